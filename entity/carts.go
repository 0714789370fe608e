package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	SessionID uint         `gorm:"uniqueIndex" json:"sessionId"`
	Session   GuestSession `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// Copied from the restaurant when the session starts.
	TaxRate decimal.Decimal `gorm:"type:decimal(6,4)" json:"taxRate"`

	// At most one promo applied at a time. PromoError carries the
	// user-visible message from the last failed apply.
	AppliedPromoID *uint      `json:"appliedPromoId"`
	AppliedPromo   *PromoCode `json:"appliedPromo,omitempty"`
	PromoError     string     `json:"promoError,omitempty"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
