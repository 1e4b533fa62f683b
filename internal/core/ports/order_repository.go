// Package ports defines the contracts between the fulfillment domain and
// infrastructure: aggregate repositories, the unit of work, and outbound
// services (notifications, inventory, tax policy). The interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no order exists with the identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
