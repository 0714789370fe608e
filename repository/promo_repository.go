package repository

import (
	"strings"

	"github.com/mohameddsalmann/resturants-mangment/entity"

	"gorm.io/gorm"
)

type PromoRepository struct{ DB *gorm.DB }

func NewPromoRepository(db *gorm.DB) *PromoRepository { return &PromoRepository{DB: db} }

// LookupActive finds an active promo by code, trimmed and case-insensitive.
func (r *PromoRepository) LookupActive(restID uint, code string) (*entity.PromoCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	var p entity.PromoCode
	err := r.DB.Where("restaurant_id = ? AND code = ? AND is_active = ?", restID, normalized, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepository) FindByID(id uint) (*entity.PromoCode, error) {
	var p entity.PromoCode
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepository) List(restID uint) ([]entity.PromoCode, error) {
	var promos []entity.PromoCode
	err := r.DB.Where("restaurant_id = ?", restID).Find(&promos).Error
	return promos, err
}

func (r *PromoRepository) Create(p *entity.PromoCode) error {
	return r.DB.Create(p).Error
}

func (r *PromoRepository) Update(p *entity.PromoCode) error {
	return r.DB.Save(p).Error
}

func (r *PromoRepository) Delete(restID, id uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.PromoCode{}, id).Error
}
