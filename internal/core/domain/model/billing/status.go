package billing

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an additional billing proposal.
// It implements a forward-only state machine:
//
//	Draft ──> PendingApproval ──> Approved ──> Paid
//	               │                  │
//	               ├──> Rejected      │
//	               └──> Cancelled <───┘
//
// Paid, Rejected and Cancelled are terminal. Billings are financial records and
// are never deleted.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is a proposal prepared but not yet sent to the customer.
	StatusDraft

	// StatusPendingApproval is a proposal awaiting the customer's decision.
	// Proposals in this state carry an expiry deadline.
	StatusPendingApproval

	// StatusApproved indicates the customer accepted the proposal.
	// Approval alone does not trigger installation; payment does.
	StatusApproved

	// StatusRejected indicates the customer declined the proposal. Terminal.
	StatusRejected

	// StatusPaid indicates the external payment was confirmed. Terminal;
	// payment unlocks installation activation.
	StatusPaid

	// StatusCancelled indicates an administrative or cascade cancellation,
	// including auto-cancellation of expired proposals. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusDraft:           "Draft",
		StatusPendingApproval: "PendingApproval",
		StatusApproved:        "Approved",
		StatusRejected:        "Rejected",
		StatusPaid:            "Paid",
		StatusCancelled:       "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:           "Draft",
		StatusPendingApproval: "PendingApproval",
		StatusApproved:        "Approved",
		StatusRejected:        "Rejected",
		StatusPaid:            "Paid",
		StatusCancelled:       "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("billing status")
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
	return s == StatusPaid || s == StatusRejected || s == StatusCancelled
}

// NeedsRegeneration reports whether a proposal in this status no longer gates
// the workflow: a declined or cancelled (including expired) proposal is
// superseded by a fresh one when the survey is approved again. A paid proposal
// never is - it keeps the activation gate satisfied.
func (s Status) NeedsRegeneration() bool {
	return s == StatusRejected || s == StatusCancelled
}

// SendForApproval transitions the status to PendingApproval.
// Valid only from Draft.
func (s Status) SendForApproval() (Status, error) {
	if s != StatusDraft {
		return 0, errs.NewInvalidTransitionError("billing", s.String(), StatusPendingApproval.String())
	}
	return StatusPendingApproval, nil
}

// Approve transitions the status to Approved.
// Valid only from PendingApproval. The expiry deadline is enforced by the
// aggregate, not by the status machine.
func (s Status) Approve() (Status, error) {
	if s != StatusPendingApproval {
		return 0, errs.NewInvalidTransitionError("billing", s.String(), StatusApproved.String())
	}
	return StatusApproved, nil
}

// Reject transitions the status to Rejected.
// Valid only from PendingApproval; no expiry check is needed for rejection.
func (s Status) Reject() (Status, error) {
	if s != StatusPendingApproval {
		return 0, errs.NewInvalidTransitionError("billing", s.String(), StatusRejected.String())
	}
	return StatusRejected, nil
}

// MarkPaid transitions the status to Paid.
// Valid only from Approved.
func (s Status) MarkPaid() (Status, error) {
	if s != StatusApproved {
		return 0, errs.NewInvalidTransitionError("billing", s.String(), StatusPaid.String())
	}
	return StatusPaid, nil
}

// Cancel transitions the status to Cancelled.
// Valid from Draft, PendingApproval and Approved (administrative override or
// order-cancellation cascade).
func (s Status) Cancel() (Status, error) {
	if s != StatusDraft && s != StatusPendingApproval && s != StatusApproved {
		return 0, errs.NewInvalidTransitionError("billing", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
