package controllers

import (
	"strconv"

	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/pricing"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

func sessionID(c *gin.Context) uint {
	if claims := utils.CurrentClaims(c); claims != nil {
		return claims.SessionID
	}
	return 0
}

// Money leaves the core unrounded; 2 decimals is presentation only.
func moneyOut(b pricing.Breakdown) gin.H {
	return gin.H{
		"subtotal": b.Subtotal.StringFixed(2),
		"discount": b.Discount.StringFixed(2),
		"tax":      b.Tax.StringFixed(2),
		"total":    b.Total.StringFixed(2),
	}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(sessionID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{
		"cart":      view.Cart,
		"itemCount": view.ItemCount,
		"totals":    moneyOut(view.Breakdown),
	})
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddItem(sessionID(c), &req); err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, gin.H{"added": req.MenuItemID})
}

func menuItemParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("menuItemId"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid menu item id")
		return 0, false
	}
	return uint(id), true
}

// PATCH /cart/items/:menuItemId
func (h *CartController) UpdateQuantity(c *gin.Context) {
	id, ok := menuItemParam(c)
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQuantity(sessionID(c), id, req.Quantity); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"menuItemId": id, "quantity": req.Quantity})
}

// PATCH /cart/items/:menuItemId/note
func (h *CartController) SetNote(c *gin.Context) {
	id, ok := menuItemParam(c)
	if !ok {
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetNote(sessionID(c), id, req.Note); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"menuItemId": id})
}

// DELETE /cart/items/:menuItemId
func (h *CartController) RemoveItem(c *gin.Context) {
	id, ok := menuItemParam(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(sessionID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": id})
}

// POST /cart/promo
func (h *CartController) ApplyPromo(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ok, message, err := h.Svc.ApplyPromo(sessionID(c), req.Code)
	if err != nil {
		respondErr(c, err)
		return
	}
	// A miss is an expected input mistake: 200 with applied=false, not an
	// error status.
	resp.OK(c, gin.H{"applied": ok, "error": message})
}

// DELETE /cart/promo
func (h *CartController) RemovePromo(c *gin.Context) {
	if err := h.Svc.RemovePromo(sessionID(c)); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"applied": false})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(sessionID(c)); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
