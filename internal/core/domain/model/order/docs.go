// Package order implements the Order aggregate of the fulfillment domain.
// An order represents a customer purchase created by the external sales flow;
// the fulfillment core reacts to its payment confirmation by creating a site
// survey, and to its cancellation by cascading the cancellation through the
// rest of the workflow.
//
// The package provides the Order aggregate root with its PaymentStatus state
// machine. Orders are financial records: they are never deleted, only cancelled.
package order
