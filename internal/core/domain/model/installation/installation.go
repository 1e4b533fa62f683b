package installation

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrInstallationIsNotConstructed is returned when an InstallationActivity
	// instance was not created through a factory method.
	ErrInstallationIsNotConstructed = errors.New(
		"InstallationActivity must be created via NewInstallationActivity or RestoreInstallationActivity constructor")

	// ErrActivatedAtIsRequired is returned when an activity carries no activation timestamp.
	ErrActivatedAtIsRequired = errs.NewValueIsRequiredError("activatedAt")
)

// InstallationActivity is the work record activated exactly once per order when
// the order becomes eligible for installation. At most one activity may ever
// exist for an order; persistence enforces the invariant with a unique index on
// the order identifier, and activation uses find-or-create so concurrent
// attempts converge on the same row.
//
// After activation the activity is mutated by field technicians: a technician
// starts the work and completes it with closing notes.
type InstallationActivity struct {
	id               kernel.UUID
	orderID          kernel.UUID
	surveyID         kernel.UUID
	billingReference *string

	status       Status
	technicianID *kernel.UUID
	scheduledFor *time.Time
	notes        string

	activatedAt time.Time
	startedAt   *time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewInstallationActivity activates an installation for an eligible order.
//
// billingReference links the activity to the paid additional billing that
// unlocked it; it is nil when the survey found no additional equipment.
// The activity starts in Pending status with no technician assigned.
func NewInstallationActivity(
	id, orderID, surveyID kernel.UUID,
	billingReference *string,
	activatedAt time.Time,
) (*InstallationActivity, error) {
	a := &InstallationActivity{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setSurveyID(surveyID),
		a.setBillingReference(billingReference),
		a.setActivatedAt(activatedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreInstallationActivity reconstructs an InstallationActivity aggregate
// from persistent storage.
func RestoreInstallationActivity(
	id, orderID, surveyID kernel.UUID,
	billingReference *string,
	status Status,
	technicianID *kernel.UUID,
	scheduledFor *time.Time,
	notes string,
	activatedAt time.Time,
	startedAt, completedAt *time.Time,
) (*InstallationActivity, error) {
	a := &InstallationActivity{
		scheduledFor: scheduledFor,
		notes:        notes,
		startedAt:    startedAt,
		completedAt:  completedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setSurveyID(surveyID),
		a.setBillingReference(billingReference),
		a.setStatus(status),
		a.setTechnicianID(technicianID),
		a.setActivatedAt(activatedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the InstallationActivity instance was properly constructed.
func (a *InstallationActivity) Validate() error {
	if a == nil {
		return ErrInstallationIsNotConstructed
	}
	return a.guard.Validate(ErrInstallationIsNotConstructed)
}

// IsEqual compares two activities by their unique identifiers.
func (a *InstallationActivity) IsEqual(other *InstallationActivity) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the activity's unique identifier.
func (a *InstallationActivity) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the order being installed.
func (a *InstallationActivity) OrderID() kernel.UUID {
	return a.orderID
}

// SurveyID returns the identifier of the approved survey behind the activation.
func (a *InstallationActivity) SurveyID() kernel.UUID {
	return a.surveyID
}

// BillingReference returns the reference of the paid additional billing,
// nil when activation needed none.
func (a *InstallationActivity) BillingReference() *string {
	return a.billingReference
}

// Status returns the current activity status.
func (a *InstallationActivity) Status() Status {
	return a.status
}

// TechnicianID returns the assigned field technician, nil until started.
func (a *InstallationActivity) TechnicianID() *kernel.UUID {
	return a.technicianID
}

// ScheduledFor returns the planned visit time, nil when unscheduled.
func (a *InstallationActivity) ScheduledFor() *time.Time {
	return a.scheduledFor
}

// Notes returns the technician's closing notes.
func (a *InstallationActivity) Notes() string {
	return a.notes
}

// ActivatedAt returns when the activity was activated.
func (a *InstallationActivity) ActivatedAt() time.Time {
	return a.activatedAt
}

// StartedAt returns when the technician started, nil if not started.
func (a *InstallationActivity) StartedAt() *time.Time {
	return a.startedAt
}

// CompletedAt returns when the work finished, nil if not completed.
func (a *InstallationActivity) CompletedAt() *time.Time {
	return a.completedAt
}

// Schedule records the planned visit time. Allowed while the activity is
// Pending; rescheduling overwrites the previous slot.
func (a *InstallationActivity) Schedule(at time.Time) error {
	if a.status != StatusPending {
		return errs.NewInvalidTransitionError("installation", a.status.String(), a.status.String())
	}

	a.scheduledFor = &at
	return nil
}

// Start assigns a field technician and begins the work.
// Valid only from Pending status.
func (a *InstallationActivity) Start(technicianID kernel.UUID, now time.Time) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	newStatus, err := a.status.Start()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.technicianID = &technicianID
	a.startedAt = &now
	return nil
}

// Complete finishes the work with the technician's closing notes.
// Valid only from InProgress status.
func (a *InstallationActivity) Complete(now time.Time, notes string) error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.completedAt = &now
	a.notes = notes
	return nil
}

// Cancel calls off the installation, usually as part of an order-cancellation
// cascade. Valid from Pending and InProgress.
func (a *InstallationActivity) Cancel() error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *InstallationActivity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *InstallationActivity) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *InstallationActivity) setSurveyID(surveyID kernel.UUID) error {
	if err := surveyID.Validate(); err != nil {
		return err
	}
	a.surveyID = surveyID
	return nil
}

func (a *InstallationActivity) setBillingReference(billingReference *string) error {
	if billingReference != nil && *billingReference == "" {
		return errs.NewValueIsRequiredError("billingReference")
	}
	a.billingReference = billingReference
	return nil
}

func (a *InstallationActivity) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *InstallationActivity) setTechnicianID(technicianID *kernel.UUID) error {
	if technicianID != nil {
		if err := technicianID.Validate(); err != nil {
			return err
		}
	}
	a.technicianID = technicianID
	return nil
}

func (a *InstallationActivity) setActivatedAt(activatedAt time.Time) error {
	if activatedAt.IsZero() {
		return ErrActivatedAtIsRequired
	}
	a.activatedAt = activatedAt
	return nil
}
