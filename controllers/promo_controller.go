package controllers

import (
	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PromoController struct {
	Svc *services.PromoService
}

func NewPromoController(svc *services.PromoService) *PromoController {
	return &PromoController{Svc: svc}
}

// GET /owner/promos
func (h *PromoController) List(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	promos, err := h.Svc.List(claims.RestaurantID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, promos)
}

// POST /owner/promos
func (h *PromoController) Create(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	var req struct {
		Code            string          `json:"code" binding:"required"`
		DiscountPercent decimal.Decimal `json:"discountPercent"`
		IsActive        *bool           `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	promo, err := h.Svc.Create(claims.RestaurantID, req.Code, req.DiscountPercent, active)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, promo)
}

// PATCH /owner/promos/:promoId
func (h *PromoController) Update(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "promoId")
	if !ok {
		return
	}
	var req struct {
		DiscountPercent *decimal.Decimal `json:"discountPercent"`
		IsActive        *bool            `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	promo, err := h.Svc.Update(claims.RestaurantID, id, req.DiscountPercent, req.IsActive)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, promo)
}

// DELETE /owner/promos/:promoId
func (h *PromoController) Delete(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "promoId")
	if !ok {
		return
	}
	if err := h.Svc.Delete(claims.RestaurantID, id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
