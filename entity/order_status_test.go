package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusOwnerChain(t *testing.T) {
	want := map[OrderStatus]OrderStatus{
		StatusNew:       StatusAccepted,
		StatusAccepted:  StatusPreparing,
		StatusPreparing: StatusReady,
		StatusReady:     StatusServed,
		StatusServed:    StatusPaid,
	}
	for cur, next := range want {
		got, ok := NextStatus(RoleOwner, cur)
		assert.True(t, ok, "owner should advance from %s", cur)
		assert.Equal(t, next, got)
	}

	_, ok := NextStatus(RoleOwner, StatusPaid)
	assert.False(t, ok, "paid is terminal")
}

func TestNextStatusKitchenChain(t *testing.T) {
	// No accept gate: new goes straight to preparing
	got, ok := NextStatus(RoleKitchen, StatusNew)
	assert.True(t, ok)
	assert.Equal(t, StatusPreparing, got)

	got, ok = NextStatus(RoleKitchen, StatusAccepted)
	assert.True(t, ok)
	assert.Equal(t, StatusPreparing, got)

	// Kitchen never settles the bill
	_, ok = NextStatus(RoleKitchen, StatusServed)
	assert.False(t, ok)
}

func TestNextStatusGuestCannotAdvance(t *testing.T) {
	for _, cur := range []OrderStatus{StatusNew, StatusPreparing, StatusServed} {
		_, ok := NextStatus(RoleGuest, cur)
		assert.False(t, ok)
	}
}

func TestOrderStatusActive(t *testing.T) {
	assert.True(t, StatusNew.Active())
	assert.True(t, StatusReady.Active())
	assert.False(t, StatusServed.Active())
	assert.False(t, StatusPaid.Active())
	assert.False(t, OrderStatus("cancelled").Active())
}
