package controllers

import (
	"strconv"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
)

type OwnerOrderController struct{ Svc *services.OrderService }

func NewOwnerOrderController(s *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{Svc: s}
}

// GET /owner/orders?status=&page=&limit=
func (h *OwnerOrderController) List(c *gin.Context) {
	claims := utils.CurrentClaims(c)

	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &st
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.Svc.ListForRestaurant(claims.RestaurantID, status, page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /owner/orders/:id
func (h *OwnerOrderController) Detail(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.DetailForRestaurant(claims.RestaurantID, uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, orderOut(order))
}

// PATCH /owner/orders/:id/status
func (h *OwnerOrderController) AdvanceStatus(c *gin.Context) {
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

	order, err := h.Svc.OwnerAdvance(claims.UserID, claims.RestaurantID, uint(id), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, orderOut(order))
}

// GET /owner/dashboard
func (h *OwnerOrderController) Dashboard(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	stats, err := h.Svc.Dashboard(claims.RestaurantID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{
		"todayRevenue":         stats.TodayRevenue.StringFixed(2),
		"totalOrders":          stats.TotalOrders,
		"activeOrders":         stats.ActiveOrders,
		"avgCompletionMinutes": stats.AvgCompletionMinutes,
	})
}
