package order

import (
	"fulfillment/internal/pkg/errs"
)

// PaymentStatus represents the payment state of a customer order.
// It implements a state machine with defined transitions:
//
//	Unpaid ──> Paid ──> Cancelled
//	   │                    ▲
//	   └────────────────────┘
//
// Cancelled is terminal. Orders are never deleted, only cancelled.
type PaymentStatus int

const (
	// StatusUnknown represents an invalid or undefined payment status.
	// This value (0) helps catch uninitialized PaymentStatus values.
	StatusUnknown PaymentStatus = iota

	// StatusUnpaid is the initial status when an order enters the fulfillment
	// pipeline from the sales flow.
	StatusUnpaid

	// StatusPaid indicates the order payment was confirmed. Paid orders are
	// eligible for site survey creation.
	StatusPaid

	// StatusCancelled indicates the order was cancelled. This is a terminal
	// state; cancellation cascades through the workflow and permanently
	// disables installation activation.
	StatusCancelled
)

// getStatusStrings returns a map of PaymentStatus values to their string representations.
func getStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		StatusUnknown:   "Unknown",
		StatusUnpaid:    "Unpaid",
		StatusPaid:      "Paid",
		StatusCancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid PaymentStatus values.
func getValidStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		StatusUnpaid:    "Unpaid",
		StatusPaid:      "Paid",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks if the PaymentStatus value is valid.
// Valid statuses are: Unpaid, Paid, Cancelled.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s PaymentStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s PaymentStatus) IsTerminal() bool {
	return s == StatusCancelled
}

// ConfirmPayment transitions the status to Paid.
//
// Valid transitions:
//   - Unpaid -> Paid
//
// Any other source state returns an InvalidTransitionError. Duplicate payment
// confirmations are rejected here; the caller guards against re-triggering
// downstream effects.
func (s PaymentStatus) ConfirmPayment() (PaymentStatus, error) {
	if s != StatusUnpaid {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusPaid.String())
	}

	return StatusPaid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Unpaid -> Cancelled
//   - Paid -> Cancelled
//
// Cancelling an already cancelled order returns an InvalidTransitionError.
func (s PaymentStatus) Cancel() (PaymentStatus, error) {
	if s != StatusUnpaid && s != StatusPaid {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusCancelled.String())
	}

	return StatusCancelled, nil
}
