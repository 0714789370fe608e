package repository

import (
	"github.com/mohameddsalmann/resturants-mangment/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ----- Categories -----

func (r *MenuRepository) ListCategories(restID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("restaurant_id = ?", restID).Order("sort_order").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) FindCategory(restID, id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.Where("restaurant_id = ?", restID).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MenuRepository) UpdateCategory(c *entity.Category) error {
	return r.DB.Save(c).Error
}

// DeleteCategory removes the category and all of its items.
func (r *MenuRepository) DeleteCategory(tx *gorm.DB, restID, id uint) error {
	if err := tx.Where("restaurant_id = ? AND category_id = ?", restID, id).
		Delete(&entity.MenuItem{}).Error; err != nil {
		return err
	}
	return tx.Where("restaurant_id = ?", restID).Delete(&entity.Category{}, id).Error
}

// ----- Menu items -----

func (r *MenuRepository) ListItems(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("category_id, sort_order").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) DeleteItem(restID, id uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) SetItemAvailability(restID, id uint, available bool) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", id, restID).
		Update("is_available", available).Error
}
