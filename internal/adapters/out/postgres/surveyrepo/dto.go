// Package surveyrepo provides data transfer objects and mapping functions for site survey persistence.
// This package implements the repository pattern for the site survey domain aggregate, handling
// the conversion between domain entities and database representations.
package surveyrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/survey"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SurveyDTO represents the database structure for persisting site survey aggregates.
// Maps survey domain entities to relational database tables with a unique constraint
// on order_id so each order carries at most one survey.
type SurveyDTO struct {
	ID                          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderID                     uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex"`
	Location                    LocationDTO   `gorm:"embedded;embeddedPrefix:location_"`
	TechnicianID                *uuid.UUID    `gorm:"type:uuid;index"`
	Status                      int           `gorm:"type:int;not null;index"`
	RequiresAdditionalEquipment bool          `gorm:"not null"`
	CostJustification           string        `gorm:"type:text"`
	CostItems                   []CostItemDTO `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
	ApprovedBy                  *uuid.UUID    `gorm:"type:uuid"`
	ApprovedAt                  *time.Time
	RejectionReason             string `gorm:"type:text"`
}

// TableName specifies the database table name for site survey entities.
// Overrides GORM's default naming convention to use "site_surveys".
func (SurveyDTO) TableName() string {
	return "site_surveys"
}

// LocationDTO represents the embedded service address coordinates within the survey table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// CostItemDTO represents the database structure for persisting additional cost line items.
// Links to the owning survey via foreign key.
type CostItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SurveyID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName      string          `gorm:"type:varchar(255);not null"`
	CostType      int             `gorm:"type:int;not null"`
	Quantity      int             `gorm:"type:int;not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsRequired    bool            `gorm:"not null"`
	Justification string          `gorm:"type:text"`
}

// TableName specifies the database table name for cost item entities.
// Overrides GORM's default naming convention to use "survey_cost_items".
func (CostItemDTO) TableName() string {
	return "survey_cost_items"
}

// fromDomain converts a site survey domain aggregate to its database representation.
// Maps all aggregate entities including recorded cost line items.
func fromDomain(siteSurvey *survey.SiteSurvey) SurveyDTO {
	surveyID := siteSurvey.ID().Bytes()
	costItems := make([]CostItemDTO, 0, len(siteSurvey.CostItems()))

	for _, item := range siteSurvey.CostItems() {
		costItems = append(costItems, CostItemDTO{
			ID:            item.ID().Bytes(),
			SurveyID:      surveyID,
			ItemName:      item.ItemName(),
			CostType:      int(item.CostType()),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice(),
			IsRequired:    item.IsRequired(),
			Justification: item.Justification(),
		})
	}

	var technicianID *uuid.UUID
	if id := siteSurvey.TechnicianID(); id != nil {
		raw := id.Bytes()
		technicianID = &raw
	}

	var approvedBy *uuid.UUID
	if id := siteSurvey.ApprovedBy(); id != nil {
		raw := id.Bytes()
		approvedBy = &raw
	}

	return SurveyDTO{
		ID:      surveyID,
		OrderID: siteSurvey.OrderID().Bytes(),
		Location: LocationDTO{
			Latitude:  siteSurvey.Location().Latitude(),
			Longitude: siteSurvey.Location().Longitude(),
		},
		TechnicianID:                technicianID,
		Status:                      int(siteSurvey.Status()),
		RequiresAdditionalEquipment: siteSurvey.RequiresAdditionalEquipment(),
		CostJustification:           siteSurvey.CostJustification(),
		CostItems:                   costItems,
		ApprovedBy:                  approvedBy,
		ApprovedAt:                  siteSurvey.ApprovedAt(),
		RejectionReason:             siteSurvey.RejectionReason(),
	}
}

// toDomain converts a database DTO to a site survey domain aggregate.
// Reconstructs the complete aggregate including all cost line items using RestoreSiteSurvey.
func toDomain(dto SurveyDTO) (*survey.SiteSurvey, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	technicianID, err := optionalUUID(dto.TechnicianID)
	if err != nil {
		return nil, err
	}

	approvedBy, err := optionalUUID(dto.ApprovedBy)
	if err != nil {
		return nil, err
	}

	costItems := make([]*survey.AdditionalCost, 0, len(dto.CostItems))
	for _, itemDto := range dto.CostItems {
		item, itemErr := costItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		costItems = append(costItems, item)
	}

	return survey.RestoreSiteSurvey(
		id,
		orderID,
		loc,
		technicianID,
		survey.Status(dto.Status),
		dto.RequiresAdditionalEquipment,
		dto.CostJustification,
		costItems,
		approvedBy,
		dto.ApprovedAt,
		dto.RejectionReason,
	)
}

// costItemToDomain converts a cost item DTO to its domain entity.
func costItemToDomain(dto CostItemDTO) (*survey.AdditionalCost, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return survey.RestoreAdditionalCost(
		id,
		dto.ItemName,
		survey.CostType(dto.CostType),
		dto.Quantity,
		dto.UnitPrice,
		dto.IsRequired,
		dto.Justification,
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
