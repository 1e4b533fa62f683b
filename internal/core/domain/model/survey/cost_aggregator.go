package survey

import (
	"github.com/shopspring/decimal"
)

// Subtotal sums the derived total prices of the given cost line items into a
// billing subtotal with 2 fractional digits.
//
// Each item contributes quantity x unit price; the subtotal is the single
// source a billing proposal may derive its amounts from, so regenerating it
// from the same items always yields the persisted value.
func Subtotal(items []*AdditionalCost) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.TotalPrice())
	}
	return sum.Round(2)
}
