package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderWorkflowQueryIsNotConstructed = errors.New(
	"GetOrderWorkflowQuery must be created via NewGetOrderWorkflowQuery constructor",
)

// GetOrderWorkflowQuery retrieves the complete workflow view of one order:
// its payment status plus the current state of the survey, billing and
// installation records attached to it.
//
// Example:
//
//	query, err := NewGetOrderWorkflowQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderWorkflowQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
type GetOrderWorkflowQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderWorkflowQuery creates a query for one order's workflow view.
func NewGetOrderWorkflowQuery(orderID kernel.UUID) (GetOrderWorkflowQuery, error) {
	q := GetOrderWorkflowQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderWorkflowQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderWorkflowQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderWorkflowQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderWorkflowQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderWorkflowQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// WorkflowSurveyView is the survey slice of the order workflow view.
type WorkflowSurveyView struct {
	ID     kernel.UUID
	Status string
}

// WorkflowBillingView is the billing slice of the order workflow view.
type WorkflowBillingView struct {
	ID          kernel.UUID
	Reference   string
	TotalAmount decimal.Decimal
	Status      string
	ExpiresAt   time.Time
}

// WorkflowInstallationView is the installation slice of the order workflow view.
type WorkflowInstallationView struct {
	ID     kernel.UUID
	Status string
}

// GetOrderWorkflowQueryResponse aggregates the order's workflow state.
// Survey, Billing and Installation are nil while the corresponding record
// does not exist yet.
type GetOrderWorkflowQueryResponse struct {
	OrderID      kernel.UUID
	OrderStatus  string
	Survey       *WorkflowSurveyView
	Billing      *WorkflowBillingView
	Installation *WorkflowInstallationView
}
