package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// referenceRetryLimit bounds regeneration attempts when a billing reference
// collides with an existing one.
const referenceRetryLimit = 3

// ApproveSurveyResult reports what the approval produced beyond the status
// change: a generated billing proposal awaiting the customer, or an activated
// installation when no additional equipment was needed.
type ApproveSurveyResult struct {
	GeneratedBilling      *billing.AdditionalBilling
	ActivatedInstallation *installation.InstallationActivity
}

// ApproveSurveyCommandHandler approves a completed survey and advances the
// workflow behind it:
//
//   - a survey requiring additional equipment gets a billing proposal
//     generated from its cost items (idempotent: an existing live or paid
//     proposal for the survey is reused; a rejected or cancelled one is
//     superseded by a fresh proposal, which is how re-approving an already
//     approved survey unblocks the order)
//   - a survey requiring nothing extra attempts installation activation
//     immediately
//
// A NotEligibleError from the activation policy is swallowed here: it is the
// expected deferred state while the billing gate is open.
type ApproveSurveyCommandHandler struct {
	uowFactory       UoWFactory
	taxPolicy        ports.TaxPolicy
	proposalValidity time.Duration
	now              func() time.Time
}

// NewApproveSurveyCommandHandler creates a handler for survey approvals.
// proposalValidity bounds how long generated proposals stay approvable;
// non-positive values fall back to the billing default.
func NewApproveSurveyCommandHandler(
	uowFactory UoWFactory,
	taxPolicy ports.TaxPolicy,
	proposalValidity time.Duration,
) ApproveSurveyCommandHandler {
	return ApproveSurveyCommandHandler{
		uowFactory:       uowFactory,
		taxPolicy:        taxPolicy,
		proposalValidity: proposalValidity,
		now:              time.Now,
	}
}

// Handle processes the survey approval command.
func (h ApproveSurveyCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveSurveyCommand,
) (ApproveSurveyResult, error) {
	if err := cmd.Validate(); err != nil {
		return ApproveSurveyResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApproveSurveyResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	surveyRepo := uow.SurveyRepository()

	siteSurvey, err := surveyRepo.Get(ctx, cmd.SurveyID())
	if err != nil {
		return ApproveSurveyResult{}, err
	}

	ord, err := uow.OrderRepository().Get(ctx, siteSurvey.OrderID())
	if err != nil {
		return ApproveSurveyResult{}, err
	}

	now := h.now()
	if err = siteSurvey.Approve(cmd.ApprovedBy(), now); err != nil {
		return ApproveSurveyResult{}, err
	}
	if err = surveyRepo.Update(ctx, siteSurvey); err != nil {
		return ApproveSurveyResult{}, err
	}

	var result ApproveSurveyResult

	var proposal *billing.AdditionalBilling
	if siteSurvey.RequiresAdditionalEquipment() {
		var generated bool
		proposal, generated, err = h.findOrGenerateBilling(ctx, uow.BillingRepository(), ord, siteSurvey, now)
		if err != nil {
			return ApproveSurveyResult{}, err
		}
		if generated {
			result.GeneratedBilling = proposal
		}
	}

	activity, created, err := activateInstallation(
		ctx, uow.InstallationRepository(), ord, siteSurvey, proposal, now)
	var notEligible *errs.NotEligibleError
	switch {
	case errors.As(err, &notEligible):
		// Deferred: the billing gate (or a late cancellation) holds activation back.
	case err != nil:
		return ApproveSurveyResult{}, err
	case created:
		result.ActivatedInstallation = activity
	}

	if err = uow.Commit(ctx); err != nil {
		return ApproveSurveyResult{}, err
	}

	return result, nil
}

func (h ApproveSurveyCommandHandler) findOrGenerateBilling(
	ctx context.Context,
	billings ports.BillingRepository,
	ord *order.Order,
	siteSurvey *survey.SiteSurvey,
	now time.Time,
) (*billing.AdditionalBilling, bool, error) {
	existing, err := billings.GetBySurveyID(ctx, siteSurvey.ID())
	switch {
	case err == nil && !existing.Status().NeedsRegeneration():
		return existing, false, nil
	case err == nil:
		// A rejected or cancelled proposal no longer gates the workflow;
		// generate a replacement.
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, false, err
	}

	vatRate, err := h.taxPolicy.VATRate(ctx)
	if err != nil {
		return nil, false, err
	}
	isExempt, err := h.taxPolicy.IsExempt(ctx, ord.CustomerID())
	if err != nil {
		return nil, false, err
	}

	for attempt := 0; attempt < referenceRetryLimit; attempt++ {
		proposal, err := billing.NewAdditionalBilling(
			kernel.NewUUID(), siteSurvey.ID(), ord.ID(),
			billing.GenerateReference(now),
			siteSurvey.CostItems(),
			isExempt, vatRate,
			now, h.proposalValidity)
		if err != nil {
			return nil, false, err
		}
		if err = proposal.SendForApproval(now); err != nil {
			return nil, false, err
		}

		err = billings.Add(ctx, proposal)
		if errors.Is(err, errs.ErrIntegrity) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return proposal, true, nil
	}

	return nil, false, errs.NewIntegrityError("billing reference generation exhausted its retries")
}
