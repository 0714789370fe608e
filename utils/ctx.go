package utils

import "github.com/gin-gonic/gin"

// CurrentClaims returns the claims the auth middleware stored, or nil when
// the request is unauthenticated.
func CurrentClaims(c *gin.Context) *Claims {
	if v, ok := c.Get("claims"); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}

func CurrentRole(c *gin.Context) string {
	if claims := CurrentClaims(c); claims != nil {
		return claims.Role
	}
	return ""
}
