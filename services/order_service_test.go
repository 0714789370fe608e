package services

import (
	"strings"
	"testing"

	"github.com/mohameddsalmann/resturants-mangment/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.OrderSvc.PlaceOrder(f.Session)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestPlaceOrderNoTableContext(t *testing.T) {
	f := newFixture(t)

	_, err := f.OrderSvc.PlaceOrder(nil)
	assert.ErrorIs(t, err, ErrNoTableContext)

	_, err = f.OrderSvc.PlaceOrder(&entity.GuestSession{})
	assert.ErrorIs(t, err, ErrNoTableContext)
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	f := newFixture(t)
	f.addPromo(t, "SAVE20", "20")
	carbonara := f.addMenuItem(t, "Spaghetti Carbonara", "18.99")
	bruschetta := f.addMenuItem(t, "Bruschetta", "8.50")

	require.NoError(t, f.CartSvc.AddItem(f.Session.ID, &AddItemIn{MenuItemID: carbonara.ID, Quantity: intPtr(2), Note: strPtr("extra pecorino")}))
	require.NoError(t, f.CartSvc.AddItem(f.Session.ID, &AddItemIn{MenuItemID: bruschetta.ID, Quantity: intPtr(3)}))
	ok, _, err := f.CartSvc.ApplyPromo(f.Session.ID, "SAVE20")
	require.NoError(t, err)
	require.True(t, ok)

	order, err := f.OrderSvc.PlaceOrder(f.Session)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.Number, "ORD-"))
	assert.Equal(t, entity.StatusNew, order.Status)
	assert.Equal(t, "Alex", order.CustomerName)
	assert.Equal(t, f.Table.Number, order.TableNumber)
	assert.Equal(t, 20, order.EstimatedWaitMinutes)
	require.Len(t, order.Items, 2)

	// 18.99*2 + 8.50*3 = 63.48; -20% = 50.784; +10% tax = 55.8624
	requireDecimal(t, "63.48", order.Subtotal)
	requireDecimal(t, "12.696", order.Discount)
	requireDecimal(t, "5.0784", order.Tax)
	requireDecimal(t, "55.8624", order.Total)

	// Table flips to occupied and points at the order
	var table entity.Table
	require.NoError(t, f.DB.First(&table, f.Table.ID).Error)
	assert.Equal(t, entity.TableOccupied, table.Status)
	require.NotNil(t, table.ActiveOrderID)
	assert.Equal(t, order.ID, *table.ActiveOrderID)
}

func TestPlacedOrderImmuneToLaterEdits(t *testing.T) {
	f := newFixture(t)
	item := f.addMenuItem(t, "Margherita", "14.00")
	require.NoError(t, f.CartSvc.AddItem(f.Session.ID, &AddItemIn{MenuItemID: item.ID, Quantity: intPtr(2)}))

	order, err := f.OrderSvc.PlaceOrder(f.Session)
	require.NoError(t, err)

	// Reprice the menu and mutate the cart after placement
	require.NoError(t, f.DB.Model(item).Updates(map[string]any{"price": "99.00", "name": "Renamed"}).Error)
	require.NoError(t, f.CartSvc.UpdateQuantity(f.Session.ID, item.ID, 7))

	got, err := f.OrderSvc.DetailForSession(f.Session.ID, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Margherita", got.Items[0].Name)
	requireDecimal(t, "14.00", got.Items[0].UnitPrice)
	assert.Equal(t, 2, got.Items[0].Quantity)
	requireDecimal(t, "28.00", got.Subtotal)
}

func placeOrder(t *testing.T, f *fixture) *entity.Order {
	t.Helper()
	item := f.addMenuItem(t, "Ramen", "17.50")
	require.NoError(t, f.CartSvc.AddItem(f.Session.ID, &AddItemIn{MenuItemID: item.ID}))
	order, err := f.OrderSvc.PlaceOrder(f.Session)
	require.NoError(t, err)
	return order
}

func TestOwnerAdvanceWalksFullChain(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	chain := []entity.OrderStatus{
		entity.StatusAccepted,
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusServed,
		entity.StatusPaid,
	}
	for _, target := range chain {
		got, err := f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, order.ID, target)
		require.NoError(t, err)
		assert.Equal(t, target, got.Status)
	}
}

func TestAdvanceRejectsSkippedStep(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	_, err := f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, order.ID, entity.StatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Status untouched after the rejected advance
	got, err := f.OrderSvc.DetailForRestaurant(f.Rest.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNew, got.Status)
}

func TestAdvanceRejectsBackwards(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	_, err := f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, order.ID, entity.StatusAccepted)
	require.NoError(t, err)

	_, err = f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, order.ID, entity.StatusNew)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	_, err := f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, order.ID, entity.OrderStatus("cancelled"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestKitchenSkipsAcceptGate(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	got, err := f.OrderSvc.KitchenAdvance(f.Rest.ID, order.ID, entity.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, got.Status)
}

func TestKitchenCannotSettle(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	for _, target := range []entity.OrderStatus{entity.StatusPreparing, entity.StatusReady, entity.StatusServed} {
		_, err := f.OrderSvc.KitchenAdvance(f.Rest.ID, order.ID, target)
		require.NoError(t, err)
	}

	_, err := f.OrderSvc.KitchenAdvance(f.Rest.ID, order.ID, entity.StatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOwnerAdvanceForeignOwnerForbidden(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	_, err := f.OrderSvc.OwnerAdvance(f.Rest.OwnerID+1, f.Rest.ID, order.ID, entity.StatusAccepted)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPaidFreesTable(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	chain := []entity.OrderStatus{
		entity.StatusAccepted,
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusServed,
		entity.StatusPaid,
	}
	for _, target := range chain {
		_, err := f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, order.ID, target)
		require.NoError(t, err)
	}

	var table entity.Table
	require.NoError(t, f.DB.First(&table, f.Table.ID).Error)
	assert.Equal(t, entity.TableAvailable, table.Status)
	assert.Nil(t, table.ActiveOrderID)
}

func TestCurrentOrderSkipsFinished(t *testing.T) {
	f := newFixture(t)
	first := placeOrder(t, f)

	cur, err := f.OrderSvc.CurrentOrder(f.Rest.ID, f.Table.Number)
	require.NoError(t, err)
	assert.Equal(t, first.ID, cur.ID)

	chain := []entity.OrderStatus{
		entity.StatusAccepted,
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusServed,
	}
	for _, target := range chain {
		_, err := f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, first.ID, target)
		require.NoError(t, err)
	}

	_, err = f.OrderSvc.CurrentOrder(f.Rest.ID, f.Table.Number)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestKitchenQueueOldestFirst(t *testing.T) {
	f := newFixture(t)
	item := f.addMenuItem(t, "Gyoza", "6.50")

	var placed []uint
	for i := 0; i < 3; i++ {
		require.NoError(t, f.CartSvc.AddItem(f.Session.ID, &AddItemIn{MenuItemID: item.ID}))
		order, err := f.OrderSvc.PlaceOrder(f.Session)
		require.NoError(t, err)
		require.NoError(t, f.CartSvc.Clear(f.Session.ID))
		placed = append(placed, order.ID)
	}

	queue, err := f.OrderSvc.KitchenQueue(f.Rest.ID)
	require.NoError(t, err)
	require.Len(t, queue, 3)
	for i, o := range queue {
		assert.Equal(t, placed[i], o.ID)
	}
}

func TestDetailForSessionScoped(t *testing.T) {
	f := newFixture(t)
	order := placeOrder(t, f)

	_, err := f.OrderSvc.DetailForSession(f.Session.ID+1, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

type recordingNotifier struct {
	created []uint
	changed []uint
}

func (n *recordingNotifier) OrderCreated(o *entity.Order)       { n.created = append(n.created, o.ID) }
func (n *recordingNotifier) OrderStatusChanged(o *entity.Order) { n.changed = append(n.changed, o.ID) }

func TestNotifierFires(t *testing.T) {
	f := newFixture(t)
	rec := &recordingNotifier{}
	f.OrderSvc.Notifier = rec

	order := placeOrder(t, f)
	require.Len(t, rec.created, 1)
	assert.Equal(t, order.ID, rec.created[0])

	_, err := f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, order.ID, entity.StatusAccepted)
	require.NoError(t, err)
	require.Len(t, rec.changed, 1)
	assert.Equal(t, order.ID, rec.changed[0])

	// Failed advance does not notify
	_, err = f.OrderSvc.OwnerAdvance(f.Rest.OwnerID, f.Rest.ID, order.ID, entity.StatusServed)
	require.Error(t, err)
	assert.Len(t, rec.changed, 1)
}
