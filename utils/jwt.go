package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity of whoever holds the token: an owner account,
// a kitchen staff member, or a guest session bound to one table.
type Claims struct {
	UserID       uint   `json:"userId,omitempty"`
	StaffID      uint   `json:"staffId,omitempty"`
	SessionID    uint   `json:"sessionId,omitempty"`
	RestaurantID uint   `json:"restaurantId,omitempty"`
	TableNumber  int    `json:"tableNumber,omitempty"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(claims Claims, secret string, ttl time.Duration) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
