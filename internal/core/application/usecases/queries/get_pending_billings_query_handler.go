package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingBillingsQueryHandler reads the pending proposal backlog from the
// database, soonest-expiring first.
type GetPendingBillingsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingBillingsQueryHandler creates a handler for pending billing queries.
// Requires a GORM database connection for query execution.
func NewGetPendingBillingsQueryHandler(db *gorm.DB) GetPendingBillingsQueryHandler {
	return GetPendingBillingsQueryHandler{db: db}
}

// Handle executes the query to retrieve all proposals pending approval.
func (h GetPendingBillingsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingBillingsQuery,
) ([]GetPendingBillingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	billings := make([]GetPendingBillingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			reference,
			total_amount,
			expires_at
		FROM additional_billings
		WHERE status = ?
		ORDER BY expires_at
	`, int(billing.StatusPendingApproval)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingBillingsQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Reference,
			&resp.TotalAmount,
			&resp.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}

		billingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = billingID

		ordID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = ordID

		billings = append(billings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return billings, nil
}
