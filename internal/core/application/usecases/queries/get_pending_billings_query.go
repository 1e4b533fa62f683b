// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database, bypassing the aggregates
// and the unit of work.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPendingBillingsQueryIsNotConstructed = errors.New(
	"GetPendingBillingsQuery must be created via NewGetPendingBillingsQuery constructor",
)

// GetPendingBillingsQuery retrieves all billing proposals awaiting a customer
// decision, together with their expiry deadlines.
//
// Example:
//
//	query := NewGetPendingBillingsQuery()
//	handler := NewGetPendingBillingsQueryHandler(db)
//
//	billings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending billings: %w", err)
//	}
//	fmt.Printf("%d proposals awaiting customers\n", len(billings))
type GetPendingBillingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingBillingsQuery creates a query to retrieve pending proposals.
func NewGetPendingBillingsQuery() GetPendingBillingsQuery {
	return GetPendingBillingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingBillingsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingBillingsQueryIsNotConstructed)
}

// GetPendingBillingsQueryResponse represents one pending proposal in the
// review backlog, ordered by how soon it expires.
type GetPendingBillingsQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Reference   string
	TotalAmount decimal.Decimal
	ExpiresAt   time.Time
}
