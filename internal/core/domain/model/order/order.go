package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCreatedAtIsRequired is returned when attempting to create an order without
	// a creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Order represents a paid customer purchase entering the fulfillment pipeline.
// It is an aggregate root that manages the payment lifecycle; the sales flow
// creates orders externally, the fulfillment core mutates them when payment is
// confirmed or the order is cancelled.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must have a valid installation location
//   - Payment status transitions follow the defined state machine
//   - At most one SiteSurvey exists per order (enforced at persistence level)
//   - Orders are never deleted, only cancelled
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	location   kernel.Location
	status     PaymentStatus
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Unpaid status.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Reference to the purchasing customer (must be a valid UUID)
//   - location: Installation address coordinates (must be a valid location)
//   - createdAt: Creation timestamp (must be non-zero)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id, customerID kernel.UUID, location kernel.Location, createdAt time.Time) (*Order, error) {
	o := &Order{
		status: StatusUnpaid,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLocation(location),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, the payment status is restored to its persisted value.
func RestoreOrder(
	id, customerID kernel.UUID,
	location kernel.Location,
	status PaymentStatus,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLocation(location),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Location returns the installation address for the order.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Status returns the current payment status of the order.
func (o *Order) Status() PaymentStatus {
	return o.status
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsPaid reports whether the order payment has been confirmed.
func (o *Order) IsPaid() bool {
	return o.status == StatusPaid
}

// IsCancelled reports whether the order has been cancelled.
func (o *Order) IsCancelled() bool {
	return o.status == StatusCancelled
}

// ConfirmPayment marks the order as paid.
// Valid only from Unpaid status; returns an InvalidTransitionError otherwise.
// Confirming payment makes the order eligible for site survey creation.
func (o *Order) ConfirmPayment() error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled.
// Valid from Unpaid and Paid status; Cancelled is terminal.
// Cancellation permanently disables installation activation for this order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}
