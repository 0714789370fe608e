package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a cart at placement time. Only Status
// (and UpdatedAt) change afterwards, and only forward along the status chain.
type Order struct {
	gorm.Model
	Number string `gorm:"size:20;uniqueIndex" json:"number"`

	CustomerName  string `gorm:"size:120" json:"customerName"`
	CustomerPhone string `gorm:"size:30" json:"customerPhone"`
	TableNumber   int    `json:"tableNumber"`

	Status OrderStatus `gorm:"size:16;index" json:"status"`

	Subtotal decimal.Decimal `gorm:"type:decimal(10,4)" json:"subtotal"`
	Discount decimal.Decimal `gorm:"type:decimal(10,4)" json:"discount"`
	Tax      decimal.Decimal `gorm:"type:decimal(10,4)" json:"tax"`
	Total    decimal.Decimal `gorm:"type:decimal(10,4)" json:"total"`

	EstimatedWaitMinutes int `json:"estimatedWaitMinutes"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`

	SessionID uint         `json:"sessionId"`
	Session   GuestSession `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `json:"items"`
}
