package entity

import (
	"gorm.io/gorm"
)

// GuestSession is one customer's ordering context: restaurant + table +
// display name, created when a table QR code is scanned.
type GuestSession struct {
	gorm.Model
	CustomerName  string `gorm:"size:120;not null" json:"customerName"`
	CustomerPhone string `gorm:"size:30" json:"customerPhone"`
	TableNumber   int    `json:"tableNumber"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Cart *Cart `gorm:"foreignKey:SessionID" json:"-"`
}
