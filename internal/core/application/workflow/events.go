package workflow

import (
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
)

// OrderPaid is raised when the payment gateway confirms an order payment.
type OrderPaid struct {
	OrderID kernel.UUID
}

// SurveyCompleted is raised when a field technician submits the findings of
// an on-site assessment.
type SurveyCompleted struct {
	SurveyID                    kernel.UUID
	RequiresAdditionalEquipment bool
	CostJustification           string
	CostItems                   []commands.CostItemParam
}

// SurveyApproved is raised when a back-office reviewer accepts a completed
// survey.
type SurveyApproved struct {
	SurveyID   kernel.UUID
	ApprovedBy kernel.UUID
}

// SurveyRejected is raised when a back-office reviewer sends a survey back
// for rework.
type SurveyRejected struct {
	SurveyID kernel.UUID
	Reason   string
}

// BillingApproved is raised when the customer accepts an additional billing
// proposal. Actor is the customer making the decision; the handler verifies
// they own the billed order.
type BillingApproved struct {
	BillingID kernel.UUID
	Actor     kernel.UUID
	Notes     string
}

// BillingRejected is raised when the customer declines an additional billing
// proposal.
type BillingRejected struct {
	BillingID kernel.UUID
	Actor     kernel.UUID
	Notes     string
}

// BillingPaid is raised when the payment gateway confirms the additional
// billing payment.
type BillingPaid struct {
	BillingID kernel.UUID
}

// OrderCancelled is raised when the order is called off.
type OrderCancelled struct {
	OrderID kernel.UUID
}
