package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/survey"
)

// SurveyRepository defines the persistence contract for site survey aggregates.
// Surveys are stored with their cost line items; updates replace the item set.
type SurveyRepository interface {
	// Add persists a new site survey aggregate to storage.
	Add(ctx context.Context, aggregate *survey.SiteSurvey) error

	// Update persists changes to an existing site survey, including a wholesale
	// replacement of its cost line items.
	Update(ctx context.Context, aggregate *survey.SiteSurvey) error

	// Get retrieves a site survey aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no survey exists with the identifier.
	Get(ctx context.Context, id kernel.UUID) (*survey.SiteSurvey, error)

	// GetByOrderID retrieves the 1:1 survey for an order.
	// Returns ObjectNotFoundError when the order has no survey yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*survey.SiteSurvey, error)
}
