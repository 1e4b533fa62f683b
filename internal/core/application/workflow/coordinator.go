// Package workflow coordinates the installation activation workflow. The
// Coordinator receives typed events from the outer adapters, dispatches them
// to the matching command handlers and fires customer notifications after the
// transition is committed. Notification failures are logged and never undo a
// committed transition.
package workflow

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ConfirmOrderPaymentHandler processes order payment confirmations.
type ConfirmOrderPaymentHandler interface {
	Handle(ctx context.Context, cmd commands.ConfirmOrderPaymentCommand) error
}

// CancelOrderHandler processes order cancellations.
type CancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
}

// CompleteSurveyHandler records survey findings.
type CompleteSurveyHandler interface {
	Handle(ctx context.Context, cmd commands.CompleteSurveyCommand) error
}

// ApproveSurveyHandler processes survey approvals and returns the artifacts
// the approval produced.
type ApproveSurveyHandler interface {
	Handle(ctx context.Context, cmd commands.ApproveSurveyCommand) (commands.ApproveSurveyResult, error)
}

// RejectSurveyHandler processes survey rejections.
type RejectSurveyHandler interface {
	Handle(ctx context.Context, cmd commands.RejectSurveyCommand) error
}

// ApproveBillingHandler records customer acceptance of a billing proposal.
type ApproveBillingHandler interface {
	Handle(ctx context.Context, cmd commands.ApproveBillingCommand) (*billing.AdditionalBilling, error)
}

// RejectBillingHandler records customer rejection of a billing proposal.
type RejectBillingHandler interface {
	Handle(ctx context.Context, cmd commands.RejectBillingCommand) (*billing.AdditionalBilling, error)
}

// MarkBillingPaidHandler records billing payments and attempts activation.
type MarkBillingPaidHandler interface {
	Handle(ctx context.Context, cmd commands.MarkBillingPaidCommand) (*installation.InstallationActivity, error)
}

// Coordinator dispatches workflow events to the command handlers and fires
// best-effort customer notifications once the handler has committed.
type Coordinator struct {
	confirmPayment ConfirmOrderPaymentHandler
	cancelOrder    CancelOrderHandler
	completeSurvey CompleteSurveyHandler
	approveSurvey  ApproveSurveyHandler
	rejectSurvey   RejectSurveyHandler
	approveBilling ApproveBillingHandler
	rejectBilling  RejectBillingHandler
	markPaid       MarkBillingPaidHandler

	notifier ports.Notifier
	logger   *slog.Logger
}

// NewCoordinator creates a workflow coordinator wired to the command handlers.
func NewCoordinator(
	confirmPayment ConfirmOrderPaymentHandler,
	cancelOrder CancelOrderHandler,
	completeSurvey CompleteSurveyHandler,
	approveSurvey ApproveSurveyHandler,
	rejectSurvey RejectSurveyHandler,
	approveBilling ApproveBillingHandler,
	rejectBilling RejectBillingHandler,
	markPaid MarkBillingPaidHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		confirmPayment: confirmPayment,
		cancelOrder:    cancelOrder,
		completeSurvey: completeSurvey,
		approveSurvey:  approveSurvey,
		rejectSurvey:   rejectSurvey,
		approveBilling: approveBilling,
		rejectBilling:  rejectBilling,
		markPaid:       markPaid,
		notifier:       notifier,
		logger:         logger.With("component", "workflow_coordinator"),
	}
}

// HandleOrderPaid marks the order paid and schedules its site survey.
func (c *Coordinator) HandleOrderPaid(ctx context.Context, event OrderPaid) error {
	cmd, err := commands.NewConfirmOrderPaymentCommand(event.OrderID)
	if err != nil {
		return err
	}

	return c.confirmPayment.Handle(ctx, cmd)
}

// HandleSurveyCompleted records the technician's findings on the survey.
func (c *Coordinator) HandleSurveyCompleted(ctx context.Context, event SurveyCompleted) error {
	cmd, err := commands.NewCompleteSurveyCommand(
		event.SurveyID,
		event.RequiresAdditionalEquipment,
		event.CostJustification,
		event.CostItems,
	)
	if err != nil {
		return err
	}

	return c.completeSurvey.Handle(ctx, cmd)
}

// HandleSurveyApproved approves the survey and, depending on its findings,
// either activates the installation directly or generates the additional
// billing proposal. The produced artifacts are returned to the caller and
// notified to the customer.
func (c *Coordinator) HandleSurveyApproved(
	ctx context.Context,
	event SurveyApproved,
) (commands.ApproveSurveyResult, error) {
	cmd, err := commands.NewApproveSurveyCommand(event.SurveyID, event.ApprovedBy)
	if err != nil {
		return commands.ApproveSurveyResult{}, err
	}

	result, err := c.approveSurvey.Handle(ctx, cmd)
	if err != nil {
		return commands.ApproveSurveyResult{}, err
	}

	if result.GeneratedBilling != nil {
		c.notify(ctx, "billing proposed", func() error {
			return c.notifier.NotifyBillingProposed(ctx, result.GeneratedBilling)
		})
	}

	if result.ActivatedInstallation != nil {
		c.notify(ctx, "installation activated", func() error {
			return c.notifier.NotifyInstallationActivated(ctx, result.ActivatedInstallation)
		})
	}

	return result, nil
}

// HandleSurveyRejected sends the survey back for rework.
func (c *Coordinator) HandleSurveyRejected(ctx context.Context, event SurveyRejected) error {
	cmd, err := commands.NewRejectSurveyCommand(event.SurveyID, event.Reason)
	if err != nil {
		return err
	}

	return c.rejectSurvey.Handle(ctx, cmd)
}

// HandleBillingApproved records the customer's acceptance of the proposal.
// An approval past the expiry deadline surfaces as ExpiredProposalError; an
// actor who does not own the billed order surfaces as NotEligibleError.
func (c *Coordinator) HandleBillingApproved(ctx context.Context, event BillingApproved) error {
	cmd, err := commands.NewApproveBillingCommand(event.BillingID, event.Actor, event.Notes)
	if err != nil {
		return err
	}

	proposal, err := c.approveBilling.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.notify(ctx, "billing decision", func() error {
		return c.notifier.NotifyBillingDecision(ctx, proposal)
	})

	return nil
}

// HandleBillingRejected records the customer's rejection of the proposal.
func (c *Coordinator) HandleBillingRejected(ctx context.Context, event BillingRejected) error {
	cmd, err := commands.NewRejectBillingCommand(event.BillingID, event.Actor, event.Notes)
	if err != nil {
		return err
	}

	proposal, err := c.rejectBilling.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.notify(ctx, "billing decision", func() error {
		return c.notifier.NotifyBillingDecision(ctx, proposal)
	})

	return nil
}

// HandleBillingPaid records the payment and activates the installation.
// A NotEligibleError surfaces to the caller: it means the order was cancelled
// while the payment was in flight and no installation may be created.
func (c *Coordinator) HandleBillingPaid(
	ctx context.Context,
	event BillingPaid,
) (*installation.InstallationActivity, error) {
	cmd, err := commands.NewMarkBillingPaidCommand(event.BillingID)
	if err != nil {
		return nil, err
	}

	activity, err := c.markPaid.Handle(ctx, cmd)
	if err != nil {
		if errors.Is(err, errs.ErrNotEligible) {
			c.logger.ErrorContext(ctx, "Billing payment refused, order no longer eligible for installation",
				"billing_id", event.BillingID.String(), "error", err)
		}
		return nil, err
	}

	if activity != nil {
		c.notify(ctx, "installation activated", func() error {
			return c.notifier.NotifyInstallationActivated(ctx, activity)
		})
	}

	return activity, nil
}

// HandleOrderCancelled cancels the order and cascades over its in-flight
// workflow records.
func (c *Coordinator) HandleOrderCancelled(ctx context.Context, event OrderCancelled) error {
	cmd, err := commands.NewCancelOrderCommand(event.OrderID)
	if err != nil {
		return err
	}

	if err = c.cancelOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	c.notify(ctx, "order cancelled", func() error {
		return c.notifier.NotifyOrderCancelled(ctx, event.OrderID)
	})

	return nil
}

// notify fires one best-effort notification. Failures are logged, never
// propagated: the transition is already committed.
func (c *Coordinator) notify(ctx context.Context, name string, send func() error) {
	if err := send(); err != nil {
		c.logger.WarnContext(ctx, "Notification failed", "notification", name, "error", err)
	}
}
