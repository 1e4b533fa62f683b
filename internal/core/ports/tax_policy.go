package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// TaxPolicy resolves the tax inputs applied when a billing proposal is
// generated: the VAT rate from company settings and the customer's exemption.
type TaxPolicy interface {
	// VATRate returns the configured VAT rate as a fraction (0.18 for 18%).
	VATRate(ctx context.Context) (decimal.Decimal, error)

	// IsExempt reports whether the customer is exempt from tax.
	IsExempt(ctx context.Context, customerID kernel.UUID) (bool, error)
}
