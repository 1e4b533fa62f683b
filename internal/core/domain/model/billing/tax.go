package billing

import (
	"github.com/shopspring/decimal"
)

// DefaultVATRate is the tax rate applied when company settings do not
// configure one (18%).
var DefaultVATRate = decimal.RequireFromString("0.18")

// ComputeTax returns the tax amount for a billing subtotal.
//
// Numeric semantics: the result carries exactly 2 fractional digits, rounded
// half-up after the multiplication. Exempt customers always get 0.00
// regardless of the subtotal.
func ComputeTax(subtotal decimal.Decimal, isTaxExempt bool, vatRate decimal.Decimal) decimal.Decimal {
	if isTaxExempt {
		return decimal.Zero.Round(2)
	}
	return subtotal.Mul(vatRate).Round(2)
}
