package survey

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a site survey.
// It implements a state machine with defined transitions:
//
//	Scheduled ──> InProgress ──> Completed ──> Approved
//	                  ▲   │           │
//	                  │   └──────> Rejected
//	                  └───────────────┘
//	                   (reassignment)
//
// Any non-Cancelled state may additionally move to Cancelled when the parent
// order is cancelled. Approved and Cancelled are otherwise terminal, except
// that Approved allows re-approval (a self-transition) to regenerate a billing
// proposal the customer let lapse.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusScheduled is the initial status when a survey is created for a
	// freshly paid order and awaits a technician.
	StatusScheduled

	// StatusInProgress indicates a technician has started the on-site assessment.
	StatusInProgress

	// StatusCompleted indicates the technician has recorded the assessment,
	// including whether additional equipment is required.
	StatusCompleted

	// StatusApproved indicates the survey passed review. Approval triggers
	// either installation activation or additional billing generation.
	StatusApproved

	// StatusRejected indicates the survey failed review. A rejected survey may
	// be reassigned to a different technician and re-enter InProgress.
	StatusRejected

	// StatusCancelled indicates the parent order was cancelled and the survey
	// is unusable. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusScheduled:  "Scheduled",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusApproved:   "Approved",
		StatusRejected:   "Rejected",
		StatusCancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusScheduled:  "Scheduled",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusApproved:   "Approved",
		StatusRejected:   "Rejected",
		StatusCancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("survey status")
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusCancelled
}

// Start transitions the status to InProgress.
// Valid only from Scheduled.
func (s Status) Start() (Status, error) {
	if s != StatusScheduled {
		return 0, errs.NewInvalidTransitionError("survey", s.String(), StatusInProgress.String())
	}
	return StatusInProgress, nil
}

// Complete transitions the status to Completed.
// Valid only from InProgress.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewInvalidTransitionError("survey", s.String(), StatusCompleted.String())
	}
	return StatusCompleted, nil
}

// Approve transitions the status to Approved.
// Valid from Completed: the equipment requirement is only meaningful once the
// technician has recorded the assessment. Also valid from Approved so that an
// already approved survey can be re-approved to supersede a rejected or
// expired billing proposal with a fresh one.
func (s Status) Approve() (Status, error) {
	if s != StatusCompleted && s != StatusApproved {
		return 0, errs.NewInvalidTransitionError("survey", s.String(), StatusApproved.String())
	}
	return StatusApproved, nil
}

// Reject transitions the status to Rejected.
// Valid from InProgress and Completed.
func (s Status) Reject() (Status, error) {
	if s != StatusInProgress && s != StatusCompleted {
		return 0, errs.NewInvalidTransitionError("survey", s.String(), StatusRejected.String())
	}
	return StatusRejected, nil
}

// Reassign transitions a rejected survey back to InProgress for a new technician.
func (s Status) Reassign() (Status, error) {
	if s != StatusRejected {
		return 0, errs.NewInvalidTransitionError("survey", s.String(), StatusInProgress.String())
	}
	return StatusInProgress, nil
}

// Cancel transitions the status to Cancelled.
// Valid from every state except Cancelled itself; an approved survey becomes
// unusable when its order is cancelled after approval.
func (s Status) Cancel() (Status, error) {
	if s == StatusCancelled {
		return 0, errs.NewInvalidTransitionError("survey", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
