package services

import (
	"strings"
	"time"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/pricing"
	"github.com/mohameddsalmann/resturants-mangment/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultEstimatedWaitMinutes = 20

// OrderNotifier receives order events for live consumers (kitchen display).
// A nil notifier is fine; events are then dropped.
type OrderNotifier interface {
	OrderCreated(o *entity.Order)
	OrderStatusChanged(o *entity.Order)
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	TableRepo *repository.TableRepository
	RestRepo  *repository.RestaurantRepository
	Notifier  OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	tableRepo *repository.TableRepository,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, TableRepo: tableRepo, RestRepo: restRepo}
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// PlaceOrder snapshots the session's cart into an immutable order. It does
// NOT clear the cart; the checkout handler does that after success.
func (s *OrderService) PlaceOrder(session *entity.GuestSession) (*entity.Order, error) {
	if session == nil || session.TableID == 0 || session.RestaurantID == 0 {
		return nil, ErrNoTableContext
	}

	cart, err := s.CartRepo.GetWithItems(session.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	lines := make([]pricing.Line, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, pricing.Line{UnitPrice: it.MenuItem.Price, Quantity: it.Quantity})
	}
	percent := decimal.Zero
	if cart.AppliedPromo != nil {
		percent = cart.AppliedPromo.DiscountPercent
	}
	b, err := pricing.Totals(lines, percent, cart.TaxRate)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		Number:               newOrderNumber(),
		CustomerName:         session.CustomerName,
		CustomerPhone:        session.CustomerPhone,
		TableNumber:          session.TableNumber,
		Status:               entity.StatusNew,
		Subtotal:             b.Subtotal,
		Discount:             b.Discount,
		Tax:                  b.Tax,
		Total:                b.Total,
		EstimatedWaitMinutes: defaultEstimatedWaitMinutes,
		TableID:              session.TableID,
		SessionID:            session.ID,
		RestaurantID:         session.RestaurantID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		// Deep copy: name/price/quantity/note frozen at placement, so later
		// menu or cart edits cannot reach a placed order.
		for _, it := range cart.Items {
			item := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Name:       it.MenuItem.Name,
				UnitPrice:  it.MenuItem.Price,
				Quantity:   it.Quantity,
				Note:       it.Note,
			}
			if err := s.Repo.CreateItem(tx, &item); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return s.TableRepo.UpdateStatus(tx, session.TableID, entity.TableOccupied, &order.ID)
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.OrderCreated(order)
	}
	return order, nil
}

// ----- Queries -----

type OrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) (*OrderListOut, error) {
	items, total, err := s.Repo.ListForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) ListForTable(restID uint, tableNumber int) ([]entity.Order, error) {
	return s.Repo.ListForTable(restID, tableNumber)
}

// CurrentOrder is the most recent active order at the table.
func (s *OrderService) CurrentOrder(restID uint, tableNumber int) (*entity.Order, error) {
	return s.Repo.CurrentForTable(restID, tableNumber)
}

func (s *OrderService) KitchenQueue(restID uint) ([]entity.Order, error) {
	return s.Repo.ListActive(restID)
}

func (s *OrderService) DetailForSession(sessionID, orderID uint) (*entity.Order, error) {
	return s.Repo.FindForSession(sessionID, orderID)
}

func (s *OrderService) DetailForRestaurant(restID, orderID uint) (*entity.Order, error) {
	return s.Repo.FindForRestaurant(restID, orderID)
}

// ----- Dashboard -----

type DashboardStats struct {
	TodayRevenue         decimal.Decimal `json:"todayRevenue"`
	TotalOrders          int64           `json:"totalOrders"`
	ActiveOrders         int64           `json:"activeOrders"`
	AvgCompletionMinutes float64         `json:"avgCompletionMinutes"`
}

// Dashboard aggregates today's numbers for the owner home screen.
func (s *OrderService) Dashboard(restID uint) (*DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	orders, err := s.Repo.FindSince(restID, startOfDay)
	if err != nil {
		return nil, err
	}
	active, err := s.Repo.CountActive(restID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TodayRevenue: decimal.Zero,
		TotalOrders:  int64(len(orders)),
		ActiveOrders: active,
	}

	var completed int
	var totalMinutes float64
	for _, o := range orders {
		stats.TodayRevenue = stats.TodayRevenue.Add(o.Total)
		if o.Status == entity.StatusServed || o.Status == entity.StatusPaid {
			completed++
			totalMinutes += o.UpdatedAt.Sub(o.CreatedAt).Minutes()
		}
	}
	if completed > 0 {
		stats.AvgCompletionMinutes = totalMinutes / float64(completed)
	}
	return stats, nil
}
