package repository

import (
	"errors"

	"github.com/mohameddsalmann/resturants-mangment/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) Create(tx *gorm.DB, c *entity.Cart) error {
	return tx.Create(c).Error
}

// GetWithItems loads the session's cart with its lines, each joined to the
// live menu item so totals always see current prices.
func (r *CartRepository) GetWithItems(sessionID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_id = ?", sessionID).
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("AppliedPromo").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) FindLine(cartID, menuItemID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) SaveLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Save(line).Error
}

func (r *CartRepository) CreateLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Create(line).Error
}

// RemoveLine deletes the line if present; removing an absent line is not
// an error. Lines are hard-deleted: a soft-deleted row would still occupy
// the cart_id+menu_item_id unique index and block re-adding the item.
func (r *CartRepository) RemoveLine(tx *gorm.DB, cartID, menuItemID uint) error {
	return tx.Unscoped().Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) SetPromo(tx *gorm.DB, cartID uint, promoID *uint, promoError string) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Updates(map[string]any{"applied_promo_id": promoID, "promo_error": promoError}).Error
}

// Clear empties the cart and drops promo/error state.
func (r *CartRepository) Clear(tx *gorm.DB, sessionID uint) error {
	var c entity.Cart
	if err := tx.Where("session_id = ?", sessionID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Unscoped().Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
		Updates(map[string]any{"applied_promo_id": nil, "promo_error": ""}).Error
}
