// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing
// for efficient querying by payment status.
type OrderDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Location   LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status     int         `gorm:"type:int;not null;index"`
	CreatedAt  time.Time   `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents the embedded installation address coordinates within the order table.
// Stores the service location where installation work takes place.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:         order.ID().Bytes(),
		CustomerID: order.CustomerID().Bytes(),
		Location: LocationDTO{
			Latitude:  order.Location().Latitude(),
			Longitude: order.Location().Longitude(),
		},
		Status:    int(order.Status()),
		CreatedAt: order.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including payment status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, loc, order.PaymentStatus(dto.Status), dto.CreatedAt)
}
