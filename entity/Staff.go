package entity

import (
	"gorm.io/gorm"
)

// Staff is a kitchen member. PINs are bcrypt-hashed; the plaintext is shown
// to the owner once, at creation.
type Staff struct {
	gorm.Model
	Name    string `gorm:"size:120;not null" json:"name"`
	Role    string `gorm:"size:16;default:kitchen" json:"role"`
	PinHash string `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
