package installation

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an installation activity:
//
//	Pending ──> InProgress ──> Completed
//	   │            │
//	   └──> Cancelled <──┘
//
// Completed and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is a newly activated installation awaiting a technician.
	StatusPending

	// StatusInProgress indicates a field technician has started the work.
	StatusInProgress

	// StatusCompleted indicates the installation was finished. Terminal.
	StatusCompleted

	// StatusCancelled indicates the installation was called off, usually as
	// part of an order-cancellation cascade. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("installation status")
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
	return s == StatusCompleted || s == StatusCancelled
}

// Start transitions the status to InProgress.
// Valid only from Pending.
func (s Status) Start() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError("installation", s.String(), StatusInProgress.String())
	}
	return StatusInProgress, nil
}

// Complete transitions the status to Completed.
// Valid only from InProgress.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewInvalidTransitionError("installation", s.String(), StatusCompleted.String())
	}
	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled.
// Valid from Pending and InProgress.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusInProgress {
		return 0, errs.NewInvalidTransitionError("installation", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
