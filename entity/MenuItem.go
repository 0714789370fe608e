package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"size:120;not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image       string          `json:"image"`
	DietaryTags string          `gorm:"size:120" json:"dietaryTags"` // comma-separated, e.g. "vegetarian,gluten-free"
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`
	SortOrder   int             `json:"sortOrder"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CategoryID uint     `gorm:"index" json:"categoryId"`
	Category   Category `json:"-"`
}
