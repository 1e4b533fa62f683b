package survey

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrAdditionalCostIsNotConstructed is returned when using an improperly
	// initialized AdditionalCost.
	ErrAdditionalCostIsNotConstructed = errors.New(
		"AdditionalCost must be created via NewAdditionalCost or RestoreAdditionalCost constructor")

	// ErrItemNameIsRequired is returned when a cost item has no name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")

	// ErrJustificationIsRequired is returned when a cost item carries no justification.
	ErrJustificationIsRequired = errs.NewValueIsRequiredError("justification")

	// ErrQuantityIsInvalid is returned when a cost item quantity is not positive.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity")

	// ErrUnitPriceIsNegative is returned when a cost item unit price is negative.
	ErrUnitPriceIsNegative = errs.NewValueIsInvalidError("unit price")
)

// AdditionalCost is a line item of extra equipment identified during a site
// survey. It belongs to exactly one SiteSurvey and becomes immutable once the
// parent survey is approved.
//
// The total price is always derived from quantity and unit price, never stored
// independently of that derivation.
type AdditionalCost struct {
	id            kernel.UUID
	itemName      string
	costType      CostType
	quantity      int
	unitPrice     decimal.Decimal
	isRequired    bool
	justification string

	guard guard.ConstructorGuard
}

// NewAdditionalCost creates a cost line item with a fresh identifier.
//
// Business rules:
//   - Item name and justification must be non-empty
//   - Cost type must be a valid enumerated value
//   - Quantity must be positive
//   - Unit price must be non-negative; it is normalized to 2 fractional digits
func NewAdditionalCost(
	itemName string,
	costType CostType,
	quantity int,
	unitPrice decimal.Decimal,
	isRequired bool,
	justification string,
) (*AdditionalCost, error) {
	return RestoreAdditionalCost(kernel.NewUUID(), itemName, costType, quantity, unitPrice, isRequired, justification)
}

// RestoreAdditionalCost reconstructs a cost line item from persistent storage.
func RestoreAdditionalCost(
	id kernel.UUID,
	itemName string,
	costType CostType,
	quantity int,
	unitPrice decimal.Decimal,
	isRequired bool,
	justification string,
) (*AdditionalCost, error) {
	c := &AdditionalCost{
		isRequired: isRequired,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setItemName(itemName),
		c.setCostType(costType),
		c.setQuantity(quantity),
		c.setUnitPrice(unitPrice),
		c.setJustification(justification),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the AdditionalCost was properly constructed.
func (c *AdditionalCost) Validate() error {
	if c == nil {
		return ErrAdditionalCostIsNotConstructed
	}
	return c.guard.Validate(ErrAdditionalCostIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (c *AdditionalCost) ID() kernel.UUID {
	return c.id
}

// ItemName returns the equipment item name.
func (c *AdditionalCost) ItemName() string {
	return c.itemName
}

// CostType returns the line item classification.
func (c *AdditionalCost) CostType() CostType {
	return c.costType
}

// Quantity returns the item count.
func (c *AdditionalCost) Quantity() int {
	return c.quantity
}

// UnitPrice returns the per-unit price with 2 fractional digits.
func (c *AdditionalCost) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// TotalPrice returns quantity x unit price. The value is always recomputed
// from its factors so persisted line items can never drift.
func (c *AdditionalCost) TotalPrice() decimal.Decimal {
	return c.unitPrice.Mul(decimal.NewFromInt(int64(c.quantity)))
}

// IsRequired reports whether the item is mandatory for the installation.
func (c *AdditionalCost) IsRequired() bool {
	return c.isRequired
}

// Justification returns the technician's reason for the extra cost.
func (c *AdditionalCost) Justification() string {
	return c.justification
}

func (c *AdditionalCost) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *AdditionalCost) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}
	c.itemName = itemName
	return nil
}

func (c *AdditionalCost) setCostType(costType CostType) error {
	if err := costType.Validate(); err != nil {
		return err
	}
	c.costType = costType
	return nil
}

func (c *AdditionalCost) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *AdditionalCost) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return ErrUnitPriceIsNegative
	}
	c.unitPrice = unitPrice.Round(2)
	return nil
}

func (c *AdditionalCost) setJustification(justification string) error {
	if justification == "" {
		return ErrJustificationIsRequired
	}
	c.justification = justification
	return nil
}
