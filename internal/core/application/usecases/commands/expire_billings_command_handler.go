package commands

import (
	"context"
	"time"
)

// ExpireBillingsCommandHandler cancels every pending proposal whose expiry
// deadline has passed. Run periodically by the expiration sweep job.
type ExpireBillingsCommandHandler struct {
	uowFactory BillingUoWFactory
	now        func() time.Time
}

// NewExpireBillingsCommandHandler creates a handler for the expiration sweep.
func NewExpireBillingsCommandHandler(uowFactory BillingUoWFactory) ExpireBillingsCommandHandler {
	return ExpireBillingsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the sweep and returns how many proposals were cancelled.
func (h ExpireBillingsCommandHandler) Handle(ctx context.Context, cmd ExpireBillingsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	billingRepo := uow.BillingRepository()

	now := h.now()
	expired, err := billingRepo.GetAllPendingExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, proposal := range expired {
		if err = proposal.Expire(now); err != nil {
			return 0, err
		}
		if err = billingRepo.Update(ctx, proposal); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
