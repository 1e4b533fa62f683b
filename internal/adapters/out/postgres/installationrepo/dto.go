// Package installationrepo provides data transfer objects and mapping functions
// for installation activity persistence. This package implements the repository
// pattern for the installation activity domain aggregate, handling the conversion
// between domain entities and database representations.
package installationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InstallationDTO represents the database structure for persisting installation activities.
// The unique index on order_id is the load-bearing constraint: activation is
// idempotent because the database rejects a second activity for the same order.
type InstallationDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	SurveyID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	BillingReference *string    `gorm:"type:varchar(13)"`
	Status           int        `gorm:"type:int;not null;index"`
	TechnicianID     *uuid.UUID `gorm:"type:uuid;index"`
	ScheduledFor     *time.Time
	Notes            string    `gorm:"type:text"`
	ActivatedAt      time.Time `gorm:"not null"`
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

// TableName specifies the database table name for installation activity entities.
// Overrides GORM's default naming convention to use "installation_activities".
func (InstallationDTO) TableName() string {
	return "installation_activities"
}

// fromDomain converts an installation activity domain aggregate to its database representation.
func fromDomain(activity *installation.InstallationActivity) InstallationDTO {
	var technicianID *uuid.UUID
	if id := activity.TechnicianID(); id != nil {
		raw := id.Bytes()
		technicianID = &raw
	}

	return InstallationDTO{
		ID:               activity.ID().Bytes(),
		OrderID:          activity.OrderID().Bytes(),
		SurveyID:         activity.SurveyID().Bytes(),
		BillingReference: activity.BillingReference(),
		Status:           int(activity.Status()),
		TechnicianID:     technicianID,
		ScheduledFor:     activity.ScheduledFor(),
		Notes:            activity.Notes(),
		ActivatedAt:      activity.ActivatedAt(),
		StartedAt:        activity.StartedAt(),
		CompletedAt:      activity.CompletedAt(),
	}
}

// toDomain converts a database DTO to an installation activity domain aggregate.
// Reconstructs the complete aggregate using RestoreInstallationActivity.
func toDomain(dto InstallationDTO) (*installation.InstallationActivity, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	surveyID, err := kernel.UUIDFromBytes(dto.SurveyID[:])
	if err != nil {
		return nil, err
	}

	var technicianID *kernel.UUID
	if dto.TechnicianID != nil {
		tID, techErr := kernel.UUIDFromBytes((*dto.TechnicianID)[:])
		if techErr != nil {
			return nil, techErr
		}

		technicianID = &tID
	}

	return installation.RestoreInstallationActivity(
		id,
		orderID,
		surveyID,
		dto.BillingReference,
		installation.Status(dto.Status),
		technicianID,
		dto.ScheduledFor,
		dto.Notes,
		dto.ActivatedAt,
		dto.StartedAt,
		dto.CompletedAt,
	)
}
