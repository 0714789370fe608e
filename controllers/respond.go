package controllers

import (
	"errors"
	"net/http"

	"github.com/mohameddsalmann/resturants-mangment/pkg/resp"
	"github.com/mohameddsalmann/resturants-mangment/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondErr maps service errors to HTTP statuses. All of them are local
// validation failures, never transient faults.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrNotInRestaurant),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrNoTableContext),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidQRCode),
		errors.Is(err, services.ErrInvalidPercent):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
