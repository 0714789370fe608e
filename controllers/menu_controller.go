package controllers

import (
	"strconv"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MenuController covers the owner's menu management screens.
type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// GET /owner/menu
func (h *MenuController) Menu(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	menu, err := h.Svc.Menu(claims.RestaurantID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /owner/menu/categories
func (h *MenuController) CreateCategory(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	var req struct {
		Name      string `json:"name" binding:"required"`
		Icon      string `json:"icon"`
		SortOrder int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := &entity.Category{
		Name:         req.Name,
		Icon:         req.Icon,
		SortOrder:    req.SortOrder,
		RestaurantID: claims.RestaurantID,
	}
	if err := h.Svc.CreateCategory(cat); err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /owner/menu/categories/:categoryId
func (h *MenuController) UpdateCategory(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "categoryId")
	if !ok {
		return
	}
	var req struct {
		Name      *string `json:"name"`
		Icon      *string `json:"icon"`
		SortOrder *int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := h.Svc.UpdateCategory(claims.RestaurantID, id, func(cat *entity.Category) {
		if req.Name != nil {
			cat.Name = *req.Name
		}
		if req.Icon != nil {
			cat.Icon = *req.Icon
		}
		if req.SortOrder != nil {
			cat.SortOrder = *req.SortOrder
		}
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /owner/menu/categories/:categoryId
func (h *MenuController) DeleteCategory(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "categoryId")
	if !ok {
		return
	}
	if err := h.Svc.DeleteCategory(claims.RestaurantID, id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type menuItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	DietaryTags string          `json:"dietaryTags"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	SortOrder   int             `json:"sortOrder"`
}

// POST /owner/menu/items
func (h *MenuController) CreateItem(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	item := &entity.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		DietaryTags:  req.DietaryTags,
		IsAvailable:  true,
		SortOrder:    req.SortOrder,
		CategoryID:   req.CategoryID,
		RestaurantID: claims.RestaurantID,
	}
	if err := h.Svc.CreateItem(item); err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /owner/menu/items/:itemId
func (h *MenuController) UpdateItem(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "itemId")
	if !ok {
		return
	}
	var req struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Price       *decimal.Decimal `json:"price"`
		Image       *string          `json:"image"`
		DietaryTags *string          `json:"dietaryTags"`
		CategoryID  *uint            `json:"categoryId"`
		SortOrder   *int             `json:"sortOrder"`
		IsAvailable *bool            `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		resp.BadRequest(c, "price must not be negative")
		return
	}

	item, err := h.Svc.UpdateItem(claims.RestaurantID, id, func(item *entity.MenuItem) {
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Price != nil {
			item.Price = *req.Price
		}
		if req.Image != nil {
			item.Image = *req.Image
		}
		if req.DietaryTags != nil {
			item.DietaryTags = *req.DietaryTags
		}
		if req.CategoryID != nil {
			item.CategoryID = *req.CategoryID
		}
		if req.SortOrder != nil {
			item.SortOrder = *req.SortOrder
		}
		if req.IsAvailable != nil {
			item.IsAvailable = *req.IsAvailable
		}
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /owner/menu/items/:itemId
func (h *MenuController) DeleteItem(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "itemId")
	if !ok {
		return
	}
	if err := h.Svc.DeleteItem(claims.RestaurantID, id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /owner/menu/items/:itemId/toggle
func (h *MenuController) ToggleAvailability(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	id, ok := idParam(c, "itemId")
	if !ok {
		return
	}
	item, err := h.Svc.ToggleAvailability(claims.RestaurantID, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}
