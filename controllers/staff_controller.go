package controllers

import (
	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Svc *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{Svc: svc}
}

// GET /owner/staff
func (h *StaffController) List(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	staff, err := h.Svc.List(claims.RestaurantID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, staff)
}

// POST /owner/staff: the PIN is returned once and never again.
func (h *StaffController) Add(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	staff, pin, err := h.Svc.Add(claims.RestaurantID, req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, gin.H{"staff": staff, "pin": pin})
}

// DELETE /owner/staff/:staffId
func (h *StaffController) Remove(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "staffId")
	if !ok {
		return
	}
	if err := h.Svc.Remove(claims.RestaurantID, id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
