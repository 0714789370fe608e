package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name            string          `gorm:"size:120;not null" json:"name"`
	Logo            string          `json:"logo"`
	Address         string          `json:"address"`
	Phone           string          `gorm:"size:30" json:"phone"`
	CuisineType     string          `gorm:"size:60" json:"cuisineType"`
	OperatingHours  string          `gorm:"size:60" json:"operatingHours"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(6,4)" json:"taxRate"`
	Currency        string          `gorm:"size:3;default:USD" json:"currency"`
	IsSetupComplete bool            `json:"isSetupComplete"`

	OwnerID uint `gorm:"uniqueIndex" json:"ownerId"`
	Owner   User `json:"-"`

	Categories []Category  `json:"-"`
	MenuItems  []MenuItem  `json:"-"`
	Tables     []Table     `json:"-"`
	Staff      []Staff     `json:"-"`
	Promos     []PromoCode `json:"-"`
	Orders     []Order     `json:"-"`
}
