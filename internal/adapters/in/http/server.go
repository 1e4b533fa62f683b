// Package http exposes the installation activation workflow over a REST API.
// Handlers translate requests into workflow events or commands, dispatch them
// and map the error taxonomy onto HTTP status codes.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/application/workflow"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the workflow API.
// Lifecycle transitions go through the workflow coordinator; technician and
// read-only operations call their handlers directly.
type Server struct {
	coordinator *workflow.Coordinator

	// Technician command handlers
	startSurveyHandler          commands.StartSurveyCommandHandler
	reassignSurveyHandler       commands.ReassignSurveyCommandHandler
	startInstallationHandler    commands.StartInstallationCommandHandler
	completeInstallationHandler commands.CompleteInstallationCommandHandler

	// Query handlers
	getPendingBillingsHandler queries.GetPendingBillingsQueryHandler
	getOrderWorkflowHandler   queries.GetOrderWorkflowQueryHandler
}

// NewServer creates a new HTTP server with the required coordinator and handlers.
func NewServer(
	coordinator *workflow.Coordinator,
	startSurveyHandler commands.StartSurveyCommandHandler,
	reassignSurveyHandler commands.ReassignSurveyCommandHandler,
	startInstallationHandler commands.StartInstallationCommandHandler,
	completeInstallationHandler commands.CompleteInstallationCommandHandler,
	getPendingBillingsHandler queries.GetPendingBillingsQueryHandler,
	getOrderWorkflowHandler queries.GetOrderWorkflowQueryHandler,
) *Server {
	return &Server{
		coordinator:                 coordinator,
		startSurveyHandler:          startSurveyHandler,
		reassignSurveyHandler:       reassignSurveyHandler,
		startInstallationHandler:    startInstallationHandler,
		completeInstallationHandler: completeInstallationHandler,
		getPendingBillingsHandler:   getPendingBillingsHandler,
		getOrderWorkflowHandler:     getOrderWorkflowHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders/:id/payment-confirmed", s.ConfirmOrderPayment)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/workflow", s.GetOrderWorkflow)

	api.POST("/surveys/:id/start", s.StartSurvey)
	api.POST("/surveys/:id/complete", s.CompleteSurvey)
	api.POST("/surveys/:id/approve", s.ApproveSurvey)
	api.POST("/surveys/:id/reject", s.RejectSurvey)
	api.POST("/surveys/:id/reassign", s.ReassignSurvey)

	api.POST("/billings/:id/approve", s.ApproveBilling)
	api.POST("/billings/:id/reject", s.RejectBilling)
	api.POST("/billings/:id/paid", s.MarkBillingPaid)
	api.GET("/billings/pending", s.GetPendingBillings)

	api.POST("/installations/:id/start", s.StartInstallation)
	api.POST("/installations/:id/complete", s.CompleteInstallation)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ConfirmOrderPayment handles POST /api/v1/orders/:id/payment-confirmed.
// Marks the order paid and schedules its site survey. Idempotent.
func (s *Server) ConfirmOrderPayment(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	event := workflow.OrderPaid{OrderID: orderID}
	if err = s.coordinator.HandleOrderPaid(ctx.Request().Context(), event); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
// Cancels the order and cascades over its workflow records. Idempotent.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	event := workflow.OrderCancelled{OrderID: orderID}
	if err = s.coordinator.HandleOrderCancelled(ctx.Request().Context(), event); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartSurveyRequest carries the technician taking over a scheduled survey.
type StartSurveyRequest struct {
	TechnicianID string `json:"technician_id"`
}

// StartSurvey handles POST /api/v1/surveys/:id/start.
func (s *Server) StartSurvey(ctx echo.Context) error {
	surveyID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request StartSurveyRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	technicianID, err := kernel.UUIDFromString(request.TechnicianID)
	if err != nil {
		return badRequest(ctx, "Invalid technician id")
	}

	cmd, err := commands.NewStartSurveyCommand(surveyID, technicianID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startSurveyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CostItemRequest is one cost line item reported with the survey findings.
type CostItemRequest struct {
	ItemName      string `json:"item_name"`
	CostType      string `json:"cost_type"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	IsRequired    bool   `json:"is_required"`
	Justification string `json:"justification"`
}

// CompleteSurveyRequest carries the findings of an on-site assessment.
type CompleteSurveyRequest struct {
	RequiresAdditionalEquipment bool              `json:"requires_additional_equipment"`
	CostJustification           string            `json:"cost_justification"`
	CostItems                   []CostItemRequest `json:"cost_items"`
}

// CompleteSurvey handles POST /api/v1/surveys/:id/complete.
func (s *Server) CompleteSurvey(ctx echo.Context) error {
	surveyID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request CompleteSurveyRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	costItems := make([]commands.CostItemParam, 0, len(request.CostItems))
	for _, item := range request.CostItems {
		unitPrice, priceErr := decimalFromString(item.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+item.UnitPrice)
		}

		costItems = append(costItems, commands.CostItemParam{
			ItemName:      item.ItemName,
			CostType:      item.CostType,
			Quantity:      item.Quantity,
			UnitPrice:     unitPrice,
			IsRequired:    item.IsRequired,
			Justification: item.Justification,
		})
	}

	event := workflow.SurveyCompleted{
		SurveyID:                    surveyID,
		RequiresAdditionalEquipment: request.RequiresAdditionalEquipment,
		CostJustification:           request.CostJustification,
		CostItems:                   costItems,
	}
	if err = s.coordinator.HandleSurveyCompleted(ctx.Request().Context(), event); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveSurveyRequest carries the reviewer approving a completed survey.
type ApproveSurveyRequest struct {
	ApprovedBy string `json:"approved_by"`
}

// BillingView is the billing part of an approval response.
type BillingView struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	Subtotal    string `json:"subtotal"`
	TaxAmount   string `json:"tax_amount"`
	TotalAmount string `json:"total_amount"`
	ExpiresAt   string `json:"expires_at"`
}

// InstallationView is the installation part of an approval response.
type InstallationView struct {
	ID               string  `json:"id"`
	BillingReference *string `json:"billing_reference,omitempty"`
}

// ApproveSurveyResponse reports which artifact the approval produced: a
// billing proposal awaiting the customer, or an activated installation.
type ApproveSurveyResponse struct {
	Billing      *BillingView      `json:"billing,omitempty"`
	Installation *InstallationView `json:"installation,omitempty"`
}

// ApproveSurvey handles POST /api/v1/surveys/:id/approve.
func (s *Server) ApproveSurvey(ctx echo.Context) error {
	surveyID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ApproveSurveyRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	approvedBy, err := kernel.UUIDFromString(request.ApprovedBy)
	if err != nil {
		return badRequest(ctx, "Invalid approver id")
	}

	event := workflow.SurveyApproved{SurveyID: surveyID, ApprovedBy: approvedBy}
	result, err := s.coordinator.HandleSurveyApproved(ctx.Request().Context(), event)
	if err != nil {
		return writeError(ctx, err)
	}

	response := ApproveSurveyResponse{}
	if proposal := result.GeneratedBilling; proposal != nil {
		response.Billing = &BillingView{
			ID:          proposal.ID().String(),
			Reference:   proposal.Reference(),
			Subtotal:    proposal.Subtotal().StringFixed(2),
			TaxAmount:   proposal.TaxAmount().StringFixed(2),
			TotalAmount: proposal.TotalAmount().StringFixed(2),
			ExpiresAt:   proposal.ExpiresAt().Format(timeFormat),
		}
	}
	if activity := result.ActivatedInstallation; activity != nil {
		response.Installation = &InstallationView{
			ID:               activity.ID().String(),
			BillingReference: activity.BillingReference(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RejectSurveyRequest carries the reviewer's reason for sending a survey back.
type RejectSurveyRequest struct {
	Reason string `json:"reason"`
}

// RejectSurvey handles POST /api/v1/surveys/:id/reject.
func (s *Server) RejectSurvey(ctx echo.Context) error {
	surveyID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request RejectSurveyRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	event := workflow.SurveyRejected{SurveyID: surveyID, Reason: request.Reason}
	if err = s.coordinator.HandleSurveyRejected(ctx.Request().Context(), event); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignSurveyRequest carries the replacement technician.
type ReassignSurveyRequest struct {
	TechnicianID string `json:"technician_id"`
}

// ReassignSurvey handles POST /api/v1/surveys/:id/reassign.
func (s *Server) ReassignSurvey(ctx echo.Context) error {
	surveyID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ReassignSurveyRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	technicianID, err := kernel.UUIDFromString(request.TechnicianID)
	if err != nil {
		return badRequest(ctx, "Invalid technician id")
	}

	cmd, err := commands.NewReassignSurveyCommand(surveyID, technicianID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reassignSurveyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BillingDecisionRequest identifies the customer making a decision, with
// optional notes.
type BillingDecisionRequest struct {
	ActorID string `json:"actor_id"`
	Notes   string `json:"notes"`
}

// ApproveBilling handles POST /api/v1/billings/:id/approve.
// An approval at or past the expiry deadline is refused with 409, as is an
// actor who does not own the billed order.
func (s *Server) ApproveBilling(ctx echo.Context) error {
	billingID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request BillingDecisionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	event := workflow.BillingApproved{BillingID: billingID, Actor: actor, Notes: request.Notes}
	if err = s.coordinator.HandleBillingApproved(ctx.Request().Context(), event); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectBilling handles POST /api/v1/billings/:id/reject.
func (s *Server) RejectBilling(ctx echo.Context) error {
	billingID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request BillingDecisionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	event := workflow.BillingRejected{BillingID: billingID, Actor: actor, Notes: request.Notes}
	if err = s.coordinator.HandleBillingRejected(ctx.Request().Context(), event); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkBillingPaidResponse reports the installation activated by the payment.
// Installation is null when a previous activation already exists.
type MarkBillingPaidResponse struct {
	Installation *InstallationView `json:"installation"`
}

// MarkBillingPaid handles POST /api/v1/billings/:id/paid.
// Payment of the billing activates the installation; for a cancelled order
// the payment is refused with 409 and no installation is created.
func (s *Server) MarkBillingPaid(ctx echo.Context) error {
	billingID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	event := workflow.BillingPaid{BillingID: billingID}
	activity, err := s.coordinator.HandleBillingPaid(ctx.Request().Context(), event)
	if err != nil {
		return writeError(ctx, err)
	}

	response := MarkBillingPaidResponse{}
	if activity != nil {
		response.Installation = &InstallationView{
			ID:               activity.ID().String(),
			BillingReference: activity.BillingReference(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartInstallationRequest carries the technician starting the field work.
type StartInstallationRequest struct {
	TechnicianID string `json:"technician_id"`
}

// StartInstallation handles POST /api/v1/installations/:id/start.
func (s *Server) StartInstallation(ctx echo.Context) error {
	installationID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request StartInstallationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	technicianID, err := kernel.UUIDFromString(request.TechnicianID)
	if err != nil {
		return badRequest(ctx, "Invalid technician id")
	}

	cmd, err := commands.NewStartInstallationCommand(installationID, technicianID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startInstallationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteInstallationRequest carries the closing notes of the field work.
type CompleteInstallationRequest struct {
	Notes string `json:"notes"`
}

// CompleteInstallation handles POST /api/v1/installations/:id/complete.
func (s *Server) CompleteInstallation(ctx echo.Context) error {
	installationID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request CompleteInstallationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteInstallationCommand(installationID, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeInstallationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PendingBilling is one row of the pending proposal backlog.
type PendingBilling struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	Reference   string `json:"reference"`
	TotalAmount string `json:"total_amount"`
	ExpiresAt   string `json:"expires_at"`
}

// GetPendingBillings handles GET /api/v1/billings/pending.
func (s *Server) GetPendingBillings(ctx echo.Context) error {
	query := queries.NewGetPendingBillingsQuery()

	proposals, err := s.getPendingBillingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PendingBilling, len(proposals))
	for i, proposal := range proposals {
		response[i] = PendingBilling{
			ID:          proposal.ID.String(),
			OrderID:     proposal.OrderID.String(),
			Reference:   proposal.Reference,
			TotalAmount: proposal.TotalAmount.StringFixed(2),
			ExpiresAt:   proposal.ExpiresAt.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// WorkflowSurvey is the survey slice of the order workflow view.
type WorkflowSurvey struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// WorkflowBilling is the billing slice of the order workflow view.
type WorkflowBilling struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	TotalAmount string `json:"total_amount"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
}

// WorkflowInstallation is the installation slice of the order workflow view.
type WorkflowInstallation struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderWorkflow aggregates the order's workflow state in one response.
type OrderWorkflow struct {
	OrderID      string                `json:"order_id"`
	OrderStatus  string                `json:"order_status"`
	Survey       *WorkflowSurvey       `json:"survey"`
	Billing      *WorkflowBilling      `json:"billing"`
	Installation *WorkflowInstallation `json:"installation"`
}

// GetOrderWorkflow handles GET /api/v1/orders/:id/workflow.
func (s *Server) GetOrderWorkflow(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderWorkflowQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderWorkflowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := OrderWorkflow{
		OrderID:     view.OrderID.String(),
		OrderStatus: view.OrderStatus,
	}
	if view.Survey != nil {
		response.Survey = &WorkflowSurvey{
			ID:     view.Survey.ID.String(),
			Status: view.Survey.Status,
		}
	}
	if view.Billing != nil {
		response.Billing = &WorkflowBilling{
			ID:          view.Billing.ID.String(),
			Reference:   view.Billing.Reference,
			TotalAmount: view.Billing.TotalAmount.StringFixed(2),
			Status:      view.Billing.Status,
			ExpiresAt:   view.Billing.ExpiresAt.Format(timeFormat),
		}
	}
	if view.Installation != nil {
		response.Installation = &WorkflowInstallation{
			ID:     view.Installation.ID.String(),
			Status: view.Installation.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
