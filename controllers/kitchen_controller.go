package controllers

import (
	"strconv"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
)

type KitchenController struct {
	StaffSvc *services.StaffService
	OrderSvc *services.OrderService
}

func NewKitchenController(staffSvc *services.StaffService, orderSvc *services.OrderService) *KitchenController {
	return &KitchenController{StaffSvc: staffSvc, OrderSvc: orderSvc}
}

// POST /kitchen/login
func (h *KitchenController) Login(c *gin.Context) {
	var req struct {
		RestaurantID uint   `json:"restaurantId" binding:"required"`
		Pin          string `json:"pin" binding:"required,len=4"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, staff, err := h.StaffSvc.KitchenLogin(req.RestaurantID, req.Pin)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "staff": staff})
}

// GET /kitchen/orders: the queue, oldest first.
func (h *KitchenController) Queue(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	orders, err := h.OrderSvc.KitchenQueue(claims.RestaurantID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PATCH /kitchen/orders/:id/status
func (h *KitchenController) AdvanceStatus(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.OrderSvc.KitchenAdvance(claims.RestaurantID, uint(id), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, orderOut(order))
}
