package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and cascades the cancellation
// through every non-terminal workflow record: the site survey, the additional
// billing proposal and the installation activity. The reserved equipment kit
// is released.
//
// Cancellation is final: the order becomes permanently ineligible for
// installation activation, so a late billing payment can never create an
// installation for it. Cancelling an already cancelled order is a no-op.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	inventory  ports.InventoryService
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, inventory ports.InventoryService) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
	}
}

// Handle processes the order cancellation and its cascade in one transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if ord.IsCancelled() {
		return nil
	}

	if err = ord.Cancel(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = h.cancelSurvey(ctx, uow.SurveyRepository(), cmd); err != nil {
		return err
	}
	if err = h.cancelBilling(ctx, uow.BillingRepository(), cmd); err != nil {
		return err
	}
	if err = h.cancelInstallation(ctx, uow.InstallationRepository(), cmd); err != nil {
		return err
	}

	if err = h.inventory.Release(ctx, ord.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CancelOrderCommandHandler) cancelSurvey(
	ctx context.Context,
	surveys ports.SurveyRepository,
	cmd CancelOrderCommand,
) error {
	siteSurvey, err := surveys.GetByOrderID(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if siteSurvey.Status().IsTerminal() {
		return nil
	}
	if err = siteSurvey.Cancel(); err != nil {
		return err
	}
	return surveys.Update(ctx, siteSurvey)
}

func (h CancelOrderCommandHandler) cancelBilling(
	ctx context.Context,
	billings ports.BillingRepository,
	cmd CancelOrderCommand,
) error {
	proposal, err := billings.GetByOrderID(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if proposal.Status().IsTerminal() {
		return nil
	}
	if err = proposal.Cancel(); err != nil {
		return err
	}
	return billings.Update(ctx, proposal)
}

func (h CancelOrderCommandHandler) cancelInstallation(
	ctx context.Context,
	installations ports.InstallationRepository,
	cmd CancelOrderCommand,
) error {
	activity, err := installations.GetByOrderID(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if activity.Status().IsTerminal() {
		return nil
	}
	if err = activity.Cancel(); err != nil {
		return err
	}
	return installations.Update(ctx, activity)
}
