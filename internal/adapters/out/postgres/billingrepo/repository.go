package billingrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBillingRepository implements BillingRepository using GORM.
type GormBillingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBillingRepository creates a new GORM additional billing repository.
func NewGormBillingRepository(db *gorm.DB, tracker aggregateTracker) *GormBillingRepository {
	return &GormBillingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new additional billing to the database.
// The unique reference index and the partial active-survey index surface
// collisions as IntegrityError so callers can regenerate the reference and retry.
func (r *GormBillingRepository) Add(ctx context.Context, aggregate *billing.AdditionalBilling) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewIntegrityErrorWithCause("billing reference or survey already taken", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing additional billing to the database.
func (r *GormBillingRepository) Update(ctx context.Context, aggregate *billing.AdditionalBilling) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BillingDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an additional billing by ID.
func (r *GormBillingRepository) Get(ctx context.Context, id kernel.UUID) (*billing.AdditionalBilling, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BillingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("additional billing", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySurveyID retrieves the most recent additional billing generated for the
// given survey. Earlier rejected or cancelled proposals may precede it.
func (r *GormBillingRepository) GetBySurveyID(ctx context.Context, surveyID kernel.UUID) (*billing.AdditionalBilling, error) {
	if err := surveyID.Validate(); err != nil {
		return nil, err
	}

	var dto BillingDTO
	err := r.db.WithContext(ctx).
		Order("expires_at DESC").
		First(&dto, "survey_id = ?", surveyID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("additional billing for survey", surveyID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the most recent additional billing for the given order.
func (r *GormBillingRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*billing.AdditionalBilling, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto BillingDTO
	err := r.db.WithContext(ctx).
		Order("expires_at DESC").
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("additional billing for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingExpiredBefore retrieves proposals still pending approval whose
// expiry deadline is at or before the given moment.
func (r *GormBillingRepository) GetAllPendingExpiredBefore(
	ctx context.Context,
	deadline time.Time,
) ([]*billing.AdditionalBilling, error) {
	var dtos []BillingDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND expires_at <= ?", int(billing.StatusPendingApproval), deadline).Error
	if err != nil {
		return nil, err
	}

	proposals := make([]*billing.AdditionalBilling, 0, len(dtos))
	for _, dto := range dtos {
		proposal, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		proposals = append(proposals, proposal)
	}

	return proposals, nil
}
