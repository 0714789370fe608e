package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PromoCode struct {
	gorm.Model
	// Stored uppercase; lookups are trimmed and case-insensitive.
	Code            string          `gorm:"size:50;not null;index:idx_rest_code,unique" json:"code"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2)" json:"discountPercent"`
	IsActive        bool            `gorm:"default:true" json:"isActive"`

	RestaurantID uint       `gorm:"index:idx_rest_code,unique" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
