package services

import (
	"errors"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/pricing"
	"github.com/mohameddsalmann/resturants-mangment/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService owns one guest session's in-progress selection. Totals are
// recomputed on every read from the live menu prices; nothing is cached.
type CartService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	MenuRepo  *repository.MenuRepository
	PromoRepo *repository.PromoRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, pr *repository.PromoRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, PromoRepo: pr}
}

type AddItemIn struct {
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	Quantity   *int    `json:"quantity"` // omitted means 1
	Note       *string `json:"note"`     // only set when explicitly provided
}

type CartView struct {
	Cart      *entity.Cart      `json:"cart"`
	ItemCount int               `json:"itemCount"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// Get loads the cart with its money breakdown.
func (s *CartService) Get(sessionID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(cart)
}

func (s *CartService) view(cart *entity.Cart) (*CartView, error) {
	lines := make([]pricing.Line, 0, len(cart.Items))
	count := 0
	for _, it := range cart.Items {
		lines = append(lines, pricing.Line{UnitPrice: it.MenuItem.Price, Quantity: it.Quantity})
		count += it.Quantity
	}

	percent := decimal.Zero
	if cart.AppliedPromo != nil {
		percent = cart.AppliedPromo.DiscountPercent
	}

	b, err := pricing.Totals(lines, percent, cart.TaxRate)
	if err != nil {
		return nil, err
	}
	return &CartView{Cart: cart, ItemCount: count, Breakdown: b}, nil
}

// AddItem inserts a new line or increments an existing one. The note is
// only touched when explicitly provided.
func (s *CartService) AddItem(sessionID uint, in *AddItemIn) error {
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}

	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return err
	}

	item, err := s.MenuRepo.FindItem(in.MenuItemID)
	if err != nil {
		return err
	}
	if item.RestaurantID != cart.RestaurantID {
		return ErrNotInRestaurant
	}
	if !item.IsAvailable {
		return ErrItemUnavailable
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.CartRepo.FindLine(cart.ID, item.ID)
		if err == nil {
			line.Quantity += qty
			if in.Note != nil {
				line.Note = *in.Note
			}
			return s.CartRepo.SaveLine(tx, line)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		line = &entity.CartItem{CartID: cart.ID, MenuItemID: item.ID, Quantity: qty}
		if in.Note != nil {
			line.Note = *in.Note
		}
		return s.CartRepo.CreateLine(tx, line)
	})
}

// RemoveItem deletes the line; removing an absent line is a no-op.
func (s *CartService) RemoveItem(sessionID, menuItemID uint) error {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveLine(tx, cart.ID, menuItemID)
	})
}

// UpdateQuantity sets the quantity exactly; zero or less removes the line.
// An absent line is a no-op, same as SetNote.
func (s *CartService) UpdateQuantity(sessionID, menuItemID uint, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(sessionID, menuItemID)
	}

	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return err
	}
	line, err := s.CartRepo.FindLine(cart.ID, menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	line.Quantity = qty
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SaveLine(tx, line)
	})
}

// SetNote is a no-op when the line is absent.
func (s *CartService) SetNote(sessionID, menuItemID uint, note string) error {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return err
	}
	line, err := s.CartRepo.FindLine(cart.ID, menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	line.Note = note
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SaveLine(tx, line)
	})
}

// ApplyPromo looks the code up against the restaurant's registry. A miss is
// an expected user mistake: it clears any applied promo, records the
// user-visible message, and reports ok=false without an error.
func (s *CartService) ApplyPromo(sessionID uint, code string) (bool, string, error) {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return false, "", err
	}

	promo, err := s.PromoRepo.LookupActive(cart.RestaurantID, code)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, "", err
		}
		if err := s.CartRepo.SetPromo(s.DB, cart.ID, nil, PromoNotFoundMessage); err != nil {
			return false, "", err
		}
		return false, PromoNotFoundMessage, nil
	}

	if err := s.CartRepo.SetPromo(s.DB, cart.ID, &promo.ID, ""); err != nil {
		return false, "", err
	}
	return true, "", nil
}

// RemovePromo clears the applied promo and any error, idempotently.
func (s *CartService) RemovePromo(sessionID uint) error {
	cart, err := s.CartRepo.GetWithItems(sessionID)
	if err != nil {
		return err
	}
	return s.CartRepo.SetPromo(s.DB, cart.ID, nil, "")
}

// Clear resets the cart to empty, dropping promo and error state. Called by
// the checkout handler after a successful placement.
func (s *CartService) Clear(sessionID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, sessionID)
	})
}
