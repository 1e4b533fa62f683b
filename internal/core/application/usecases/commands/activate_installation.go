package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// activateInstallation runs the activation policy for an order with
// find-or-create semantics inside the caller's transaction.
//
// Exactly zero or one activity ever exists per order:
//   - an existing activity is returned unchanged (created=false)
//   - otherwise the eligibility policy runs; a NotEligibleError propagates
//     to the caller, which decides whether the state is a deferred one
//   - an insert losing the unique-index race re-reads the winner's row
//     and returns it (created=false)
func activateInstallation(
	ctx context.Context,
	installations ports.InstallationRepository,
	ord *order.Order,
	siteSurvey *survey.SiteSurvey,
	proposal *billing.AdditionalBilling,
	now time.Time,
) (*installation.InstallationActivity, bool, error) {
	existing, err := installations.GetByOrderID(ctx, ord.ID())
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	activity, err := services.NewInstallationActivator().Activate(ord, siteSurvey, proposal, now)
	if err != nil {
		return nil, false, err
	}

	if err = installations.Add(ctx, activity); err != nil {
		if errors.Is(err, errs.ErrIntegrity) {
			winner, readErr := installations.GetByOrderID(ctx, ord.ID())
			if readErr != nil {
				return nil, false, readErr
			}
			return winner, false, nil
		}
		return nil, false, err
	}

	return activity, true, nil
}
