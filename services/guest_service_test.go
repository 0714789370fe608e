package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestParseTableQR(t *testing.T) {
	restID, tableNumber, err := ParseTableQR("qrmenu://restaurant/3/table/5")
	require.NoError(t, err)
	assert.Equal(t, uint(3), restID)
	assert.Equal(t, 5, tableNumber)
}

func TestParseTableQRRejectsGarbage(t *testing.T) {
	for _, data := range []string{
		"",
		"https://example.com/restaurant/3/table/5",
		"qrmenu://table/5",
		"qrmenu://restaurant/x/table/y",
	} {
		_, _, err := ParseTableQR(data)
		assert.ErrorIs(t, err, ErrInvalidQRCode, "payload %q", data)
	}
}

func TestStartSessionFromQR(t *testing.T) {
	f := newFixture(t)

	session, err := f.GuestSvc.StartSession(&StartSessionIn{
		QRData:       f.Table.QRCodeData,
		CustomerName: "  Sam  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam", session.CustomerName)
	assert.Equal(t, f.Rest.ID, session.RestaurantID)
	assert.Equal(t, f.Table.ID, session.TableID)
	assert.Equal(t, f.Table.Number, session.TableNumber)

	// The cart is created alongside with the restaurant's tax rate
	view, err := f.CartSvc.Get(session.ID)
	require.NoError(t, err)
	requireDecimal(t, "0.10", view.Cart.TaxRate)
	assert.Empty(t, view.Cart.Items)
}

func TestStartSessionUnknownTable(t *testing.T) {
	f := newFixture(t)

	_, err := f.GuestSvc.StartSession(&StartSessionIn{
		RestaurantID: f.Rest.ID,
		TableNumber:  99,
		CustomerName: "Sam",
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStartSessionMissingContext(t *testing.T) {
	f := newFixture(t)

	_, err := f.GuestSvc.StartSession(&StartSessionIn{CustomerName: "Sam"})
	assert.ErrorIs(t, err, ErrNoTableContext)
}
