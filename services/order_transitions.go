package services

import (
	"github.com/mohameddsalmann/resturants-mangment/entity"

	"gorm.io/gorm"
)

// AdvanceStatus moves an order one step forward along the calling role's
// transition map. target must be the immediate successor of the order's
// current status for that role; anything else fails and leaves the status
// untouched. The update is guarded on the current status so a concurrent
// advance cannot apply twice.
func (s *OrderService) AdvanceStatus(role string, restID, orderID uint, target entity.OrderStatus) (*entity.Order, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.Repo.FindForRestaurant(restID, orderID)
	if err != nil {
		return nil, err
	}

	next, ok := entity.NextStatus(role, o.Status)
	if !ok || next != target {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Lost a race with another advance.
			return ErrInvalidTransition
		}
		if target == entity.StatusPaid {
			return s.TableRepo.UpdateStatus(tx, o.TableID, entity.TableAvailable, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err = s.Repo.FindForRestaurant(restID, orderID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(o)
	}
	return o, nil
}

// OwnerAdvance requires the caller to own the restaurant.
func (s *OrderService) OwnerAdvance(ownerID, restID, orderID uint, target entity.OrderStatus) (*entity.Order, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.AdvanceStatus(entity.RoleOwner, restID, orderID, target)
}

// KitchenAdvance advances along the kitchen map (no accept gate, no paid).
func (s *OrderService) KitchenAdvance(restID, orderID uint, target entity.OrderStatus) (*entity.Order, error) {
	return s.AdvanceStatus(entity.RoleKitchen, restID, orderID, target)
}
