package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/billing"
)

// RejectBillingCommandHandler records a customer's rejection of an additional
// billing proposal. Rejection is accepted even past the expiry deadline.
type RejectBillingCommandHandler struct {
	uowFactory BillingUoWFactory
	now        func() time.Time
}

// NewRejectBillingCommandHandler creates a handler for customer rejections.
func NewRejectBillingCommandHandler(uowFactory BillingUoWFactory) RejectBillingCommandHandler {
	return RejectBillingCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the billing rejection command and returns the rejected
// proposal for post-commit notification.
func (h RejectBillingCommandHandler) Handle(
	ctx context.Context,
	cmd RejectBillingCommand,
) (*billing.AdditionalBilling, error) {
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

	if err = proposal.Reject(cmd.Actor(), h.now(), cmd.Notes()); err != nil {
		return nil, err
	}

	if err = billingRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return proposal, nil
}
