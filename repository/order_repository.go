package repository

import (
	"time"

	"github.com/mohameddsalmann/resturants-mangment/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindForRestaurant(restID, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("restaurant_id = ?", restID).Preload("Items").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindForSession(sessionID, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("session_id = ?", sessionID).Preload("Items").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard advances the status only when the row still holds the
// expected current status, so concurrent advances cannot regress or skip.
// Returns the number of affected rows (0 means lost the race or bad state).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) ListForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var orders []entity.Order
	err := q.Preload("Items").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) ListForTable(restID uint, tableNumber int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("restaurant_id = ? AND table_number = ?", restID, tableNumber).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// CurrentForTable returns the most recent order for the table that is still
// active (neither served nor paid).
func (r *OrderRepository) CurrentForTable(restID uint, tableNumber int) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("restaurant_id = ? AND table_number = ? AND status NOT IN ?",
		restID, tableNumber, []entity.OrderStatus{entity.StatusServed, entity.StatusPaid}).
		Preload("Items").
		Order("created_at DESC, id DESC").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListActive returns the kitchen queue, oldest first.
func (r *OrderRepository) ListActive(restID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("restaurant_id = ? AND status NOT IN ?",
		restID, []entity.OrderStatus{entity.StatusServed, entity.StatusPaid}).
		Preload("Items").
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	return orders, err
}

// ----- Dashboard aggregates -----

func (r *OrderRepository) CountSince(restID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND created_at >= ?", restID, since).
		Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountActive(restID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND status IN ?",
			restID, []entity.OrderStatus{entity.StatusNew, entity.StatusAccepted, entity.StatusPreparing}).
		Count(&count).Error
	return count, err
}

func (r *OrderRepository) FindSince(restID uint, since time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("restaurant_id = ? AND created_at >= ?", restID, since).
		Find(&orders).Error
	return orders, err
}
