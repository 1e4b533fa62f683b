package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderWorkflowQueryHandler assembles the workflow view of one order with
// a single left-joined read over the workflow tables.
type GetOrderWorkflowQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderWorkflowQueryHandler creates a handler for order workflow queries.
// Requires a GORM database connection for query execution.
func NewGetOrderWorkflowQueryHandler(db *gorm.DB) GetOrderWorkflowQueryHandler {
	return GetOrderWorkflowQueryHandler{db: db}
}

// Handle executes the query and returns the order's workflow view.
// Returns ObjectNotFoundError when the order does not exist.
func (h GetOrderWorkflowQueryHandler) Handle(
	ctx context.Context,
	query GetOrderWorkflowQuery,
) (GetOrderWorkflowQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderWorkflowQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			s.id,
			s.status,
			b.id,
			b.reference,
			b.total_amount,
			b.status,
			b.expires_at,
			i.id,
			i.status
		FROM orders o
		LEFT JOIN site_surveys s ON s.order_id = o.id
		LEFT JOIN additional_billings b ON b.order_id = o.id
		LEFT JOIN installation_activities i ON i.order_id = o.id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		orderID         uuid.UUID
		orderStatus     int
		surveyID        uuid.NullUUID
		surveyStatus    sql.NullInt64
		billingID       uuid.NullUUID
		reference       sql.NullString
		totalAmount     decimal.NullDecimal
		billingStatus   sql.NullInt64
		expiresAt       sql.NullTime
		installID       uuid.NullUUID
		installIDStatus sql.NullInt64
	)

	err := row.Scan(
		&orderID, &orderStatus,
		&surveyID, &surveyStatus,
		&billingID, &reference, &totalAmount, &billingStatus, &expiresAt,
		&installID, &installIDStatus,
	)
	if err == sql.ErrNoRows {
		return GetOrderWorkflowQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderWorkflowQueryResponse{}, err
	}

	resp := GetOrderWorkflowQueryResponse{
		OrderID:     query.OrderID(),
		OrderStatus: order.PaymentStatus(orderStatus).String(),
	}

	if surveyID.Valid {
		id, idErr := kernel.UUIDFromBytes(surveyID.UUID[:])
		if idErr != nil {
			return GetOrderWorkflowQueryResponse{}, idErr
		}
		resp.Survey = &WorkflowSurveyView{
			ID:     id,
			Status: survey.Status(surveyStatus.Int64).String(),
		}
	}

	if billingID.Valid {
		id, idErr := kernel.UUIDFromBytes(billingID.UUID[:])
		if idErr != nil {
			return GetOrderWorkflowQueryResponse{}, idErr
		}
		var deadline time.Time
		if expiresAt.Valid {
			deadline = expiresAt.Time
		}
		resp.Billing = &WorkflowBillingView{
			ID:          id,
			Reference:   reference.String,
			TotalAmount: totalAmount.Decimal,
			Status:      billing.Status(billingStatus.Int64).String(),
			ExpiresAt:   deadline,
		}
	}

	if installID.Valid {
		id, idErr := kernel.UUIDFromBytes(installID.UUID[:])
		if idErr != nil {
			return GetOrderWorkflowQueryResponse{}, idErr
		}
		resp.Installation = &WorkflowInstallationView{
			ID:     id,
			Status: installation.Status(installIDStatus.Int64).String(),
		}
	}

	return resp, nil
}
