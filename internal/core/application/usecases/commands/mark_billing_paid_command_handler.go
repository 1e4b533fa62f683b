package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/installation"
)

// MarkBillingPaidCommandHandler records the external payment of an approved
// proposal and attempts installation activation in the same transaction.
//
// The activation attempt is NOT swallowed on this path: a NotEligibleError
// (typically a cancelled order) propagates to the caller so it can be logged.
// No installation row is written in that case - cancellation is final.
type MarkBillingPaidCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewMarkBillingPaidCommandHandler creates a handler for billing payments.
func NewMarkBillingPaidCommandHandler(uowFactory UoWFactory) MarkBillingPaidCommandHandler {
	return MarkBillingPaidCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the billing payment command.
// Returns the activated installation when the payment unlocked one; nil when
// the activity already existed.
func (h MarkBillingPaidCommandHandler) Handle(
	ctx context.Context,
	cmd MarkBillingPaidCommand,
) (*installation.InstallationActivity, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	billingRepo := uow.BillingRepository()

	proposal, err := billingRepo.Get(ctx, cmd.BillingID())
	if err != nil {
		return nil, err
	}

	now := h.now()
	if err = proposal.MarkPaid(now); err != nil {
		return nil, err
	}
	if err = billingRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}

	ord, err := uow.OrderRepository().Get(ctx, proposal.OrderID())
	if err != nil {
		return nil, err
	}
	siteSurvey, err := uow.SurveyRepository().Get(ctx, proposal.SurveyID())
	if err != nil {
		return nil, err
	}

	activity, created, err := activateInstallation(
		ctx, uow.InstallationRepository(), ord, siteSurvey, proposal, now)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if !created {
		return nil, nil
	}
	return activity, nil
}
