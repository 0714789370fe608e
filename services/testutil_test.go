package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Table{},
		&entity.Staff{},
		&entity.PromoCode{},
		&entity.GuestSession{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

type fixture struct {
	DB       *gorm.DB
	Rest     *entity.Restaurant
	Table    *entity.Table
	Session  *entity.GuestSession
	Cart     *entity.Cart
	CartSvc  *CartService
	OrderSvc *OrderService
	GuestSvc *GuestService
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// newFixture sets up one restaurant with a table and a live guest session.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	rest := &entity.Restaurant{
		Name:            "Testaurant",
		TaxRate:         mustDecimal(t, "0.10"),
		Currency:        "USD",
		IsSetupComplete: true,
		OwnerID:         1,
	}
	require.NoError(t, db.Create(rest).Error)

	table := &entity.Table{
		Number:       5,
		Capacity:     4,
		Status:       entity.TableAvailable,
		QRCodeData:   TableQRData(rest.ID, 5),
		RestaurantID: rest.ID,
	}
	require.NoError(t, db.Create(table).Error)

	sessionRepo := repository.NewSessionRepository(db)
	cartRepo := repository.NewCartRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	guestSvc := NewGuestService(db, sessionRepo, cartRepo, restRepo, tableRepo)
	session, err := guestSvc.StartSession(&StartSessionIn{
		RestaurantID: rest.ID,
		TableNumber:  table.Number,
		CustomerName: "Alex",
	})
	require.NoError(t, err)

	cart, err := cartRepo.GetWithItems(session.ID)
	require.NoError(t, err)

	return &fixture{
		DB:       db,
		Rest:     rest,
		Table:    table,
		Session:  session,
		Cart:     cart,
		CartSvc:  NewCartService(db, cartRepo, menuRepo, promoRepo),
		OrderSvc: NewOrderService(db, orderRepo, cartRepo, tableRepo, restRepo),
		GuestSvc: guestSvc,
	}
}

func (f *fixture) addMenuItem(t *testing.T, name, price string) *entity.MenuItem {
	t.Helper()
	d, err := decimal.NewFromString(price)
	require.NoError(t, err)
	item := &entity.MenuItem{
		Name:         name,
		Price:        d,
		IsAvailable:  true,
		RestaurantID: f.Rest.ID,
	}
	require.NoError(t, f.DB.Create(item).Error)
	return item
}

func (f *fixture) addPromo(t *testing.T, code, percent string) *entity.PromoCode {
	t.Helper()
	d, err := decimal.NewFromString(percent)
	require.NoError(t, err)
	promo := &entity.PromoCode{
		Code:            code,
		DiscountPercent: d,
		IsActive:        true,
		RestaurantID:    f.Rest.ID,
	}
	require.NoError(t, f.DB.Create(promo).Error)
	return promo
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

// requireDecimal compares by numeric value, ignoring exponent representation.
func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(mustDecimal(t, want)), "want %s, got %s", want, got)
}
