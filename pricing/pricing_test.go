package pricing

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  string
	}{
		{"empty cart", nil, "0"},
		{"single line", []Line{{dec("10.99"), 1}}, "10.99"},
		{"quantity multiplies", []Line{{dec("18.99"), 2}}, "37.98"},
		{
			"mixed lines",
			[]Line{{dec("18.99"), 2}, {dec("12.99"), 2}},
			"63.96",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtotal(tt.lines)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDiscount(t *testing.T) {
	t.Run("no promo", func(t *testing.T) {
		got := Discount(dec("63.96"), decimal.Zero)
		assert.True(t, got.IsZero())
	})

	t.Run("twenty percent", func(t *testing.T) {
		got := Discount(dec("63.96"), dec("20"))
		assert.True(t, got.Equal(dec("12.792")), "got %s", got)
	})

	t.Run("never exceeds subtotal", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			subtotal := decimal.NewFromInt(r.Int63n(10000)).Div(decimal.NewFromInt(100))
			percent := decimal.NewFromInt(r.Int63n(101))
			d := Discount(subtotal, percent)
			assert.True(t, d.LessThanOrEqual(subtotal),
				"discount %s > subtotal %s at %s%%", d, subtotal, percent)
		}
	})
}

func TestTax(t *testing.T) {
	t.Run("over discounted subtotal", func(t *testing.T) {
		got, err := Tax(dec("63.96"), dec("12.792"), dec("0.10"))
		require.NoError(t, err)
		assert.True(t, got.Equal(dec("5.1168")), "got %s", got)
	})

	t.Run("zero rate", func(t *testing.T) {
		got, err := Tax(dec("63.96"), decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		_, err := Tax(dec("10"), decimal.Zero, dec("-0.05"))
		assert.ErrorIs(t, err, ErrNegativeTaxRate)
	})
}

// Totals must satisfy total = subtotal - discount + tax for any cart.
func TestTotalsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		n := r.Intn(8)
		lines := make([]Line, 0, n)
		for j := 0; j < n; j++ {
			lines = append(lines, Line{
				UnitPrice: decimal.NewFromInt(r.Int63n(5000)).Div(decimal.NewFromInt(100)),
				Quantity:  1 + r.Intn(9),
			})
		}
		percent := decimal.NewFromInt(r.Int63n(101))
		rate := decimal.NewFromInt(r.Int63n(30)).Div(decimal.NewFromInt(100))

		b, err := Totals(lines, percent, rate)
		require.NoError(t, err)

		assert.True(t, b.Total.Equal(b.Subtotal.Sub(b.Discount).Add(b.Tax)))
		assert.True(t, b.Discount.LessThanOrEqual(b.Subtotal))
		assert.True(t, b.Subtotal.Equal(Subtotal(lines)))
	}
}

// End-to-end scenarios: 2 x 18.99 + 2 x 12.99 at 10% tax.
func TestTotalsScenarios(t *testing.T) {
	lines := []Line{{dec("18.99"), 2}, {dec("12.99"), 2}}

	t.Run("no promo", func(t *testing.T) {
		b, err := Totals(lines, decimal.Zero, dec("0.10"))
		require.NoError(t, err)
		assert.True(t, b.Subtotal.Equal(dec("63.96")), "subtotal %s", b.Subtotal)
		assert.True(t, b.Discount.IsZero())
		assert.True(t, b.Tax.Equal(dec("6.396")), "tax %s", b.Tax)
		assert.True(t, b.Total.Equal(dec("70.356")), "total %s", b.Total)
	})

	t.Run("with SAVE20", func(t *testing.T) {
		b, err := Totals(lines, dec("20"), dec("0.10"))
		require.NoError(t, err)
		assert.True(t, b.Discount.Equal(dec("12.792")), "discount %s", b.Discount)
		assert.True(t, b.Tax.Equal(dec("5.1168")), "tax %s", b.Tax)
		// 63.96 - 12.792 + 5.1168
		assert.True(t, b.Total.Equal(dec("56.2848")), "total %s", b.Total)
	})

	t.Run("negative tax rate surfaces", func(t *testing.T) {
		_, err := Totals(lines, decimal.Zero, dec("-1"))
		assert.ErrorIs(t, err, ErrNegativeTaxRate)
	})
}
