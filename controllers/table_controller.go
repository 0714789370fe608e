package controllers

import (
	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Svc *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{Svc: svc}
}

// GET /owner/tables
func (h *TableController) List(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	tables, err := h.Svc.List(claims.RestaurantID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /owner/tables
func (h *TableController) Create(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	var req struct {
		Number   int `json:"number" binding:"required,min=1"`
		Capacity int `json:"capacity" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := h.Svc.Create(claims.RestaurantID, req.Number, req.Capacity)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, table)
}

// PATCH /owner/tables/:tableId/status
func (h *TableController) SetStatus(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "tableId")
	if !ok {
		return
	}
	var req struct {
		Status entity.TableStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := h.Svc.SetStatus(claims.RestaurantID, id, req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, table)
}

// DELETE /owner/tables/:tableId
func (h *TableController) Delete(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "tableId")
	if !ok {
		return
	}
	if err := h.Svc.Delete(claims.RestaurantID, id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
