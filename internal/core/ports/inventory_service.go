package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryService reserves and releases the standard equipment kit attached
// to an order. Reservation happens when payment is confirmed; release happens
// on order cancellation.
type InventoryService interface {
	// Reserve puts a hold on the order's equipment kit.
	Reserve(ctx context.Context, orderID kernel.UUID) error

	// Release frees a previously reserved kit. Releasing an order without a
	// reservation is a no-op.
	Release(ctx context.Context, orderID kernel.UUID) error
}
