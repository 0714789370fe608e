package controllers

import (
	"time"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Svc       *services.GuestService
	jwtSecret string
	jwtTTL    time.Duration
}

func NewGuestController(s *services.GuestService, secret string, ttl time.Duration) *GuestController {
	return &GuestController{Svc: s, jwtSecret: secret, jwtTTL: ttl}
}

// POST /sessions
func (h *GuestController) StartSession(c *gin.Context) {
	var req services.StartSessionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := h.Svc.StartSession(&req)
	if err != nil {
		respondErr(c, err)
		return
	}

	token, err := utils.GenerateToken(utils.Claims{
		SessionID:    session.ID,
		RestaurantID: session.RestaurantID,
		TableNumber:  session.TableNumber,
		Role:         entity.RoleGuest,
	}, h.jwtSecret, h.jwtTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"token": token, "session": session})
}
