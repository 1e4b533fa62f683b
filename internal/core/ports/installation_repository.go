package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
)

// InstallationRepository defines the persistence contract for installation
// activity aggregates. Storage enforces at most one activity per order with a
// unique index on the order identifier.
type InstallationRepository interface {
	// Add persists a new installation activity.
	// Returns IntegrityError when an activity already exists for the order
	// (the unique index lost a concurrent race); callers re-read the winner
	// with GetByOrderID.
	Add(ctx context.Context, aggregate *installation.InstallationActivity) error

	// Update persists changes to an existing installation activity.
	Update(ctx context.Context, aggregate *installation.InstallationActivity) error

	// Get retrieves an installation activity by its unique identifier.
	// Returns ObjectNotFoundError when no activity exists with the identifier.
	Get(ctx context.Context, id kernel.UUID) (*installation.InstallationActivity, error)

	// GetByOrderID retrieves the single activity for an order.
	// Returns ObjectNotFoundError when the order has no activity.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*installation.InstallationActivity, error)
}
