package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem captures name/price/quantity/note at order time, independent of
// later menu edits.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint `json:"menuItemId"`

	Name      string          `gorm:"size:120" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Note      string          `json:"note"`
}
