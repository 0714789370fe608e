package repository

import (
	"github.com/mohameddsalmann/resturants-mangment/entity"

	"gorm.io/gorm"
)

type StaffRepository struct{ DB *gorm.DB }

func NewStaffRepository(db *gorm.DB) *StaffRepository { return &StaffRepository{DB: db} }

func (r *StaffRepository) List(restID uint) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := r.DB.Where("restaurant_id = ?", restID).Find(&staff).Error
	return staff, err
}

func (r *StaffRepository) Create(s *entity.Staff) error {
	return r.DB.Create(s).Error
}

// ListKitchen returns kitchen members of a restaurant; PIN login compares
// the submitted PIN against each hash since PINs are not stored plaintext.
func (r *StaffRepository) ListKitchen(restID uint) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := r.DB.Where("restaurant_id = ? AND role = ?", restID, entity.RoleKitchen).
		Find(&staff).Error
	return staff, err
}

func (r *StaffRepository) Delete(restID, id uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.Staff{}, id).Error
}
