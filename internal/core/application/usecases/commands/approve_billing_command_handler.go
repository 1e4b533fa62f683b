package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/pkg/errs"
)

// ApproveBillingCommandHandler records a customer's acceptance of an
// additional billing proposal. Only the owner of the billed order may approve.
// The expiry deadline is enforced next: an approval at or past expiresAt fails
// with ExpiredProposalError and leaves the proposal untouched.
type ApproveBillingCommandHandler struct {
	uowFactory OrderBillingUoWFactory
	now        func() time.Time
}

// NewApproveBillingCommandHandler creates a handler for customer approvals.
func NewApproveBillingCommandHandler(uowFactory OrderBillingUoWFactory) ApproveBillingCommandHandler {
	return ApproveBillingCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the billing approval command and returns the approved
// proposal for post-commit notification.
func (h ApproveBillingCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveBillingCommand,
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

	ord, err := uow.OrderRepository().Get(ctx, proposal.OrderID())
	if err != nil {
		return nil, err
	}

	if !ord.CustomerID().IsEqual(cmd.Actor()) {
		return nil, errs.NewNotEligibleError(ord.ID().String(),
			"only the order owner may approve a billing proposal")
	}

	if err = proposal.Approve(cmd.Actor(), h.now(), cmd.Notes()); err != nil {
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
