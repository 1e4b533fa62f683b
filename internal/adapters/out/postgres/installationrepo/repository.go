package installationrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInstallationRepository implements InstallationRepository using GORM.
type GormInstallationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInstallationRepository creates a new GORM installation activity repository.
func NewGormInstallationRepository(db *gorm.DB, tracker aggregateTracker) *GormInstallationRepository {
	return &GormInstallationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new installation activity to the database.
// A concurrent activation for the same order loses to the unique index on
// order_id and comes back as IntegrityError; callers re-read the winner.
func (r *GormInstallationRepository) Add(ctx context.Context, aggregate *installation.InstallationActivity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewIntegrityErrorWithCause("installation activity already exists for order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing installation activity to the database.
func (r *GormInstallationRepository) Update(ctx context.Context, aggregate *installation.InstallationActivity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InstallationDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an installation activity by ID.
func (r *GormInstallationRepository) Get(ctx context.Context, id kernel.UUID) (*installation.InstallationActivity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InstallationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("installation activity", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the single installation activity for the given order.
func (r *GormInstallationRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*installation.InstallationActivity, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto InstallationDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("installation activity for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
