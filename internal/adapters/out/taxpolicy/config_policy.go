// Package taxpolicy resolves tax inputs from company configuration.
package taxpolicy

import (
	"context"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ConfigTaxPolicy implements ports.TaxPolicy from static configuration:
// a company-wide VAT rate and a list of tax-exempt customer accounts.
type ConfigTaxPolicy struct {
	vatRate         decimal.Decimal
	exemptCustomers map[string]struct{}
}

// NewConfigTaxPolicy creates a tax policy with the given VAT rate and exempt
// customers. A zero rate falls back to the default 18%.
func NewConfigTaxPolicy(vatRate decimal.Decimal, exemptCustomerIDs []kernel.UUID) *ConfigTaxPolicy {
	if vatRate.IsZero() {
		vatRate = billing.DefaultVATRate
	}

	exempt := make(map[string]struct{}, len(exemptCustomerIDs))
	for _, id := range exemptCustomerIDs {
		exempt[id.String()] = struct{}{}
	}

	return &ConfigTaxPolicy{
		vatRate:         vatRate,
		exemptCustomers: exempt,
	}
}

// VATRate returns the configured VAT rate as a fraction.
func (p *ConfigTaxPolicy) VATRate(_ context.Context) (decimal.Decimal, error) {
	return p.vatRate, nil
}

// IsExempt reports whether the customer appears in the exemption list.
func (p *ConfigTaxPolicy) IsExempt(_ context.Context, customerID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}

	_, ok := p.exemptCustomers[customerID.String()]
	return ok, nil
}
