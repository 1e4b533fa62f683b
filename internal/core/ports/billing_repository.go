package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/kernel"
)

// BillingRepository defines the persistence contract for additional billing
// aggregates. Billings are financial records: there is no delete operation.
type BillingRepository interface {
	// Add persists a new billing aggregate to storage.
	// Returns IntegrityError when the billing reference collides with an
	// existing one; callers regenerate the reference and retry.
	Add(ctx context.Context, aggregate *billing.AdditionalBilling) error

	// Update persists changes to an existing billing aggregate.
	Update(ctx context.Context, aggregate *billing.AdditionalBilling) error

	// Get retrieves a billing aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no billing exists with the identifier.
	Get(ctx context.Context, id kernel.UUID) (*billing.AdditionalBilling, error)

	// GetBySurveyID retrieves the billing generated for a survey.
	// Returns ObjectNotFoundError when the survey has no billing.
	GetBySurveyID(ctx context.Context, surveyID kernel.UUID) (*billing.AdditionalBilling, error)

	// GetByOrderID retrieves the most recent billing for an order.
	// Returns ObjectNotFoundError when the order has no billing.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*billing.AdditionalBilling, error)

	// GetAllPendingExpiredBefore retrieves proposals still pending approval
	// whose expiry deadline is at or before the given moment.
	GetAllPendingExpiredBefore(ctx context.Context, deadline time.Time) ([]*billing.AdditionalBilling, error)
}
