package services

import (
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/pkg/errs"
)

// InstallationActivator is a domain service deciding whether an order is
// eligible for installation and producing the activation record when it is.
//
// Eligibility rules:
//   - The order must be paid; a cancelled order is permanently ineligible
//   - The site survey must be approved
//   - When the survey requires additional equipment, its billing proposal
//     must exist and be paid
//
// The activator is pure policy: it never touches storage. Callers persist the
// returned activity with find-or-create semantics so that concurrent activation
// attempts for the same order converge on a single record.
//
// Example usage:
//
//	activator := services.NewInstallationActivator()
//
//	activity, err := activator.Activate(order, siteSurvey, proposal, time.Now())
//	var notEligible *errs.NotEligibleError
//	if errors.As(err, &notEligible) {
//	    // Expected deferred state: a precondition has not been met yet
//	    return
//	}
//	if err != nil {
//	    // Handle activation failure
//	    return
//	}
//	// Persist activity via find-or-create
type InstallationActivator struct{}

// NewInstallationActivator creates a new InstallationActivator instance.
func NewInstallationActivator() InstallationActivator {
	return InstallationActivator{}
}

// Activate evaluates the activation preconditions for an order and builds the
// installation activity when every gate passes.
//
// Parameters:
//   - ord: the order being fulfilled (must be valid)
//   - siteSurvey: the order's site survey (must be valid)
//   - proposal: the survey's additional billing, nil when none was generated
//   - now: the activation timestamp
//
// Returns:
//   - *installation.InstallationActivity: a Pending activity carrying the paid
//     billing reference, nil reference when no additional equipment was needed
//   - error: *errs.NotEligibleError naming the failed gate, or a validation error
func (a InstallationActivator) Activate(
	ord *order.Order,
	siteSurvey *survey.SiteSurvey,
	proposal *billing.AdditionalBilling,
	now time.Time,
) (*installation.InstallationActivity, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if err := siteSurvey.Validate(); err != nil {
		return nil, err
	}

	orderID := ord.ID().String()

	if ord.IsCancelled() {
		return nil, errs.NewNotEligibleError(orderID, "order is cancelled")
	}
	if !ord.IsPaid() {
		return nil, errs.NewNotEligibleError(orderID, "order is not paid")
	}
	if !siteSurvey.IsApproved() {
		return nil, errs.NewNotEligibleError(orderID, "site survey is not approved")
	}

	var billingReference *string
	if siteSurvey.RequiresAdditionalEquipment() {
		if proposal == nil {
			return nil, errs.NewNotEligibleError(orderID, "additional billing has not been generated")
		}
		if err := proposal.Validate(); err != nil {
			return nil, err
		}
		if !proposal.IsPaid() {
			return nil, errs.NewNotEligibleError(orderID, "additional billing is not paid")
		}
		reference := proposal.Reference()
		billingReference = &reference
	}

	return installation.NewInstallationActivity(
		kernel.NewUUID(), ord.ID(), siteSurvey.ID(), billingReference, now)
}
