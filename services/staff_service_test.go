package services

import (
	"testing"
	"time"

	"github.com/mohameddsalmann/resturants-mangment/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaffService(f *fixture) *StaffService {
	return NewStaffService(repository.NewStaffRepository(f.DB), "test-secret", time.Hour)
}

func TestStaffAddReturnsPinOnce(t *testing.T) {
	f := newFixture(t)
	svc := newStaffService(f)

	staff, pin, err := svc.Add(f.Rest.ID, "  Jamie  ")
	require.NoError(t, err)
	assert.Equal(t, "Jamie", staff.Name)
	assert.Len(t, pin, 4)
	assert.NotContains(t, staff.PinHash, pin)

	list, err := svc.List(f.Rest.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestKitchenLogin(t *testing.T) {
	f := newFixture(t)
	svc := newStaffService(f)

	staff, pin, err := svc.Add(f.Rest.ID, "Jamie")
	require.NoError(t, err)

	token, got, err := svc.KitchenLogin(f.Rest.ID, pin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, staff.ID, got.ID)

	_, _, err = svc.KitchenLogin(f.Rest.ID, "0000")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestKitchenLoginScopedToRestaurant(t *testing.T) {
	f := newFixture(t)
	svc := newStaffService(f)

	_, pin, err := svc.Add(f.Rest.ID, "Jamie")
	require.NoError(t, err)

	_, _, err = svc.KitchenLogin(f.Rest.ID+1, pin)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
