package entity

import (
	"gorm.io/gorm"
)

// CartItem holds no price: pre-order totals always use the live menu price.
// Prices are frozen into OrderItem at placement.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index:idx_cart_menu,unique" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"index:idx_cart_menu,unique" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}
