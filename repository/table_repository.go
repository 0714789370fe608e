package repository

import (
	"github.com/mohameddsalmann/resturants-mangment/entity"

	"gorm.io/gorm"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) List(restID uint) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("restaurant_id = ?", restID).Order("number").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) FindByID(restID, id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("restaurant_id = ?", restID).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByNumber(restID uint, number int) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("restaurant_id = ? AND number = ?", restID, number).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.TableStatus, activeOrderID *uint) error {
	return tx.Model(&entity.Table{}).Where("id = ?", id).
		Updates(map[string]any{"status": status, "active_order_id": activeOrderID}).Error
}

func (r *TableRepository) Delete(restID, id uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.Table{}, id).Error
}
