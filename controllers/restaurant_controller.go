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

type RestaurantController struct {
	Svc     *services.RestaurantService
	MenuSvc *services.MenuService
	AuthSvc *services.AuthService
}

func NewRestaurantController(s *services.RestaurantService, menuSvc *services.MenuService, authSvc *services.AuthService) *RestaurantController {
	return &RestaurantController{Svc: s, MenuSvc: menuSvc, AuthSvc: authSvc}
}

func restaurantParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return 0, false
	}
	return uint(id), true
}

// GET /restaurants/:id: public profile for the guest entry screen.
func (h *RestaurantController) Detail(c *gin.Context) {
	id, ok := restaurantParam(c)
	if !ok {
		return
	}
	rest, err := h.Svc.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/:id/menu: public catalog.
func (h *RestaurantController) Menu(c *gin.Context) {
	id, ok := restaurantParam(c)
	if !ok {
		return
	}
	menu, err := h.MenuSvc.Menu(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /owner/restaurant: onboarding.
func (h *RestaurantController) Onboard(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Onboard(claims.UserID, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	token, err := h.AuthSvc.IssueOwnerToken(claims.UserID, rest.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, gin.H{"restaurant": rest, "token": token})
}

// GET /owner/restaurant
func (h *RestaurantController) Mine(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	rest, err := h.Svc.GetByOwner(claims.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// PATCH /owner/restaurant: settings screen.
func (h *RestaurantController) UpdateSettings(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	var req struct {
		Name           *string          `json:"name"`
		Logo           *string          `json:"logo"`
		Address        *string          `json:"address"`
		Phone          *string          `json:"phone"`
		CuisineType    *string          `json:"cuisineType"`
		OperatingHours *string          `json:"operatingHours"`
		TaxRate        *decimal.Decimal `json:"taxRate"`
		Currency       *string          `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Svc.UpdateSettings(claims.UserID, func(r *entity.Restaurant) {
		if req.Name != nil {
			r.Name = *req.Name
		}
		if req.Logo != nil {
			r.Logo = *req.Logo
		}
		if req.Address != nil {
			r.Address = *req.Address
		}
		if req.Phone != nil {
			r.Phone = *req.Phone
		}
		if req.CuisineType != nil {
			r.CuisineType = *req.CuisineType
		}
		if req.OperatingHours != nil {
			r.OperatingHours = *req.OperatingHours
		}
		if req.TaxRate != nil {
			r.TaxRate = *req.TaxRate
		}
		if req.Currency != nil {
			r.Currency = *req.Currency
		}
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rest)
}
