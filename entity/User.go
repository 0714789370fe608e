package entity

import (
	"gorm.io/gorm"
)

// User is a restaurant owner account. Kitchen staff log in with a PIN
// instead (see Staff).
type User struct {
	gorm.Model
	Email    string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `gorm:"size:120" json:"name"`

	Restaurant *Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
}
