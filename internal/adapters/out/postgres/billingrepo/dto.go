// Package billingrepo provides data transfer objects and mapping functions for
// additional billing persistence. This package implements the repository pattern
// for the additional billing domain aggregate, handling the conversion between
// domain entities and database representations.
package billingrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingDTO represents the database structure for persisting additional billing aggregates.
// The billing reference carries a unique index so a generated reference can never be
// handed to two proposals.
//
// Survey uniqueness is partial: the idx_billings_active_survey index only covers
// statuses below 4 (Draft, PendingApproval, Approved), so a survey holds at most
// one live proposal while terminal ones (Rejected, Paid, Cancelled) stay behind
// as history. Proposals are financial records and never deleted, so the terminal
// rows accumulate.
type BillingDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SurveyID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_billings_active_survey,where:status < 4"`
	OrderID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Reference           string          `gorm:"type:varchar(13);not null;uniqueIndex"`
	Subtotal            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxAmount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsTaxExempt         bool            `gorm:"not null"`
	Status              int             `gorm:"type:int;not null;index"`
	ExpiresAt           time.Time       `gorm:"not null;index"`
	SentForApprovalAt   *time.Time
	CustomerRespondedAt *time.Time
	ApprovedAt          *time.Time
	RejectedAt          *time.Time
	PaidAt              *time.Time
	RespondedBy         *uuid.UUID `gorm:"type:uuid"`
	CustomerNotes       string     `gorm:"type:text"`
}

// TableName specifies the database table name for additional billing entities.
// Overrides GORM's default naming convention to use "additional_billings".
func (BillingDTO) TableName() string {
	return "additional_billings"
}

// fromDomain converts an additional billing domain aggregate to its database representation.
func fromDomain(proposal *billing.AdditionalBilling) BillingDTO {
	var respondedBy *uuid.UUID
	if id := proposal.RespondedBy(); id != nil {
		raw := id.Bytes()
		respondedBy = &raw
	}

	return BillingDTO{
		ID:                  proposal.ID().Bytes(),
		SurveyID:            proposal.SurveyID().Bytes(),
		OrderID:             proposal.OrderID().Bytes(),
		Reference:           proposal.Reference(),
		Subtotal:            proposal.Subtotal(),
		TaxAmount:           proposal.TaxAmount(),
		TotalAmount:         proposal.TotalAmount(),
		IsTaxExempt:         proposal.IsTaxExempt(),
		Status:              int(proposal.Status()),
		ExpiresAt:           proposal.ExpiresAt(),
		SentForApprovalAt:   proposal.SentForApprovalAt(),
		CustomerRespondedAt: proposal.CustomerRespondedAt(),
		ApprovedAt:          proposal.ApprovedAt(),
		RejectedAt:          proposal.RejectedAt(),
		PaidAt:              proposal.PaidAt(),
		RespondedBy:         respondedBy,
		CustomerNotes:       proposal.CustomerNotes(),
	}
}

// toDomain converts a database DTO to an additional billing domain aggregate.
// Reconstructs the complete aggregate including computed amounts using RestoreAdditionalBilling.
func toDomain(dto BillingDTO) (*billing.AdditionalBilling, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	surveyID, err := kernel.UUIDFromBytes(dto.SurveyID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	respondedBy, err := optionalUUID(dto.RespondedBy)
	if err != nil {
		return nil, err
	}

	return billing.RestoreAdditionalBilling(
		id,
		surveyID,
		orderID,
		dto.Reference,
		dto.Subtotal,
		dto.TaxAmount,
		dto.TotalAmount,
		dto.IsTaxExempt,
		billing.Status(dto.Status),
		dto.ExpiresAt,
		dto.SentForApprovalAt,
		dto.CustomerRespondedAt,
		dto.ApprovedAt,
		dto.RejectedAt,
		dto.PaidAt,
		respondedBy,
		dto.CustomerNotes,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
