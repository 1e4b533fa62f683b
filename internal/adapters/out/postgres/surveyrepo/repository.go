package surveyrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSurveyRepository implements SurveyRepository using GORM.
type GormSurveyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSurveyRepository creates a new GORM site survey repository.
func NewGormSurveyRepository(db *gorm.DB, tracker aggregateTracker) *GormSurveyRepository {
	return &GormSurveyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new site survey to the database.
// The unique index on order_id ensures at most one survey per order; a
// concurrent insert for the same order surfaces as an IntegrityError.
func (r *GormSurveyRepository) Add(ctx context.Context, aggregate *survey.SiteSurvey) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewIntegrityErrorWithCause("site survey already exists for order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing site survey to the database.
func (r *GormSurveyRepository) Update(ctx context.Context, aggregate *survey.SiteSurvey) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested cost items
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a site survey by ID.
func (r *GormSurveyRepository) Get(ctx context.Context, id kernel.UUID) (*survey.SiteSurvey, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SurveyDTO
	if err := r.db.WithContext(ctx).Preload("CostItems").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("site survey", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the site survey attached to the given order.
func (r *GormSurveyRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*survey.SiteSurvey, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto SurveyDTO
	if err := r.db.WithContext(ctx).Preload("CostItems").First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("site survey for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
