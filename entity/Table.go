package entity

import (
	"gorm.io/gorm"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

type Table struct {
	gorm.Model
	Number   int         `gorm:"not null;index:idx_rest_table,unique" json:"number"`
	Capacity int         `json:"capacity"`
	Status   TableStatus `gorm:"size:16;default:available" json:"status"`

	// Payload encoded into the printed QR sticker for this table.
	QRCodeData string `json:"qrCodeData"`

	ActiveOrderID *uint `json:"activeOrderId"`

	RestaurantID uint       `gorm:"index:idx_rest_table,unique" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
