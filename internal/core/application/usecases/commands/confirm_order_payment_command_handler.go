package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ConfirmOrderPaymentCommandHandler transitions an order to paid and opens the
// fulfillment workflow: the 1:1 site survey is scheduled at the order's
// installation location and the standard equipment kit is reserved.
//
// The handler is idempotent: a repeated confirmation for an already paid order
// with an existing survey is a no-op. Confirmations for cancelled orders fail
// with an InvalidTransitionError.
type ConfirmOrderPaymentCommandHandler struct {
	uowFactory OrderSurveyUoWFactory
	inventory  ports.InventoryService
}

// NewConfirmOrderPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmOrderPaymentCommandHandler(
	uowFactory OrderSurveyUoWFactory,
	inventory ports.InventoryService,
) ConfirmOrderPaymentCommandHandler {
	return ConfirmOrderPaymentCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
	}
}

// Handle processes the payment confirmation.
// Marks the order paid, find-or-creates its site survey and reserves the
// equipment kit within one transaction.
func (h ConfirmOrderPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderPaymentCommand) error {
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
	surveyRepo := uow.SurveyRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	alreadyPaid := ord.IsPaid()
	if !alreadyPaid {
		if err = ord.ConfirmPayment(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	}

	if _, _, err = h.findOrCreateSurvey(ctx, surveyRepo, ord.ID(), ord.Location()); err != nil {
		return err
	}

	if !alreadyPaid {
		if err = h.inventory.Reserve(ctx, ord.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h ConfirmOrderPaymentCommandHandler) findOrCreateSurvey(
	ctx context.Context,
	surveys ports.SurveyRepository,
	orderID kernel.UUID,
	location kernel.Location,
) (*survey.SiteSurvey, bool, error) {
	existing, err := surveys.GetByOrderID(ctx, orderID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	created, err := survey.NewSiteSurvey(kernel.NewUUID(), orderID, location)
	if err != nil {
		return nil, false, err
	}

	if err = surveys.Add(ctx, created); err != nil {
		if errors.Is(err, errs.ErrIntegrity) {
			winner, readErr := surveys.GetByOrderID(ctx, orderID)
			if readErr != nil {
				return nil, false, readErr
			}
			return winner, false, nil
		}
		return nil, false, err
	}

	return created, true, nil
}
