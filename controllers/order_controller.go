package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderController is the guest-facing order surface: checkout and tracking.
type OrderController struct {
	Svc      *services.OrderService
	CartSvc  *services.CartService
	GuestSvc *services.GuestService
}

func NewOrderController(s *services.OrderService, cartSvc *services.CartService, guestSvc *services.GuestService) *OrderController {
	return &OrderController{Svc: s, CartSvc: cartSvc, GuestSvc: guestSvc}
}

func orderOut(o *entity.Order) gin.H {
	return gin.H{
		"order": o,
		"totals": gin.H{
			"subtotal": o.Subtotal.StringFixed(2),
			"discount": o.Discount.StringFixed(2),
			"tax":      o.Tax.StringFixed(2),
			"total":    o.Total.StringFixed(2),
		},
	}
}

// POST /orders places the order, then clears the cart.
func (h *OrderController) Checkout(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	session, err := h.GuestSvc.Session(claims.SessionID)
	if err != nil {
		respondErr(c, err)
		return
	}

	order, err := h.Svc.PlaceOrder(session)
	if err != nil {
		respondErr(c, err)
		return
	}

	// Placement succeeded; the cart has served its purpose.
	if err := h.CartSvc.Clear(claims.SessionID); err != nil {
		log.Printf("clear cart after checkout: %v", err)
	}

	resp.Created(c, orderOut(order))
}

// GET /orders: all orders for this session's table.
func (h *OrderController) ListForTable(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	orders, err := h.Svc.ListForTable(claims.RestaurantID, claims.TableNumber)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/current: the active order being tracked.
func (h *OrderController) Current(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	order, err := h.Svc.CurrentOrder(claims.RestaurantID, claims.TableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.OK(c, gin.H{"order": nil})
			return
		}
		respondErr(c, err)
		return
	}
	resp.OK(c, orderOut(order))
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Svc.DetailForSession(claims.SessionID, uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, orderOut(order))
}
