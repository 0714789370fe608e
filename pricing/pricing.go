// Package pricing computes cart money breakdowns. All functions are pure and
// perform no rounding; callers format to 2 decimals at the presentation edge.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNegativeTaxRate is returned for a tax rate below zero, which is always
// a configuration mistake.
var ErrNegativeTaxRate = errors.New("tax rate must not be negative")

var hundred = decimal.NewFromInt(100)

// Line is one priced cart line.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Breakdown is the full money breakdown of a cart.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Subtotal sums unit price times quantity over all lines.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// Discount applies a percentage discount to the subtotal. A zero percent
// (no promo applied) yields zero. The promo registry keeps percent in
// [0,100], so the result never exceeds the subtotal.
func Discount(subtotal, discountPercent decimal.Decimal) decimal.Decimal {
	if discountPercent.IsZero() {
		return decimal.Zero
	}
	return subtotal.Mul(discountPercent).Div(hundred)
}

// Tax computes tax over the discounted subtotal.
func Tax(subtotal, discount, taxRate decimal.Decimal) (decimal.Decimal, error) {
	if taxRate.IsNegative() {
		return decimal.Zero, ErrNegativeTaxRate
	}
	return subtotal.Sub(discount).Mul(taxRate), nil
}

// Total is subtotal - discount + tax.
func Total(subtotal, discount, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Add(tax)
}

// Totals computes the whole breakdown in one call.
func Totals(lines []Line, discountPercent, taxRate decimal.Decimal) (Breakdown, error) {
	subtotal := Subtotal(lines)
	discount := Discount(subtotal, discountPercent)
	tax, err := Tax(subtotal, discount, taxRate)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    Total(subtotal, discount, tax),
	}, nil
}
