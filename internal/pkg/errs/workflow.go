package errs

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the installation activation workflow.
// These classify every failure an engine can return to the coordinator:
//
//   - ErrInvalidTransition: an operation was requested from a state that does not permit it.
//   - ErrNotEligible: an activation precondition is unmet; an expected deferred state.
//   - ErrExpiredProposal: an approval arrived after the proposal deadline.
//   - ErrInsufficientData: billing generation was attempted without cost items.
//   - ErrIntegrity: a terminal inconsistency requiring manual reconciliation.
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotEligible       = errors.New("activation is not eligible")
	ErrExpiredProposal   = errors.New("proposal has expired")
	ErrInsufficientData  = errors.New("insufficient data")
	ErrIntegrity         = errors.New("integrity violation")
)

// InvalidTransitionError indicates a state machine operation requested from a
// state that does not permit it. Always recoverable by inspecting current state;
// never retried automatically.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given entity and states.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotEligibleError indicates that installation activation was attempted while a
// precondition is unmet (survey not approved, billing unpaid, order cancelled).
// This is an expected, non-exceptional outcome used for control flow.
type NotEligibleError struct {
	OrderID string
	Reason  string
}

// NewNotEligibleError creates a NotEligibleError for the given order.
func NewNotEligibleError(orderID, reason string) *NotEligibleError {
	return &NotEligibleError{OrderID: orderID, Reason: reason}
}

func (e *NotEligibleError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s (order: %s)", ErrNotEligible, e.Reason, e.OrderID))
}

func (e *NotEligibleError) Unwrap() error {
	return ErrNotEligible
}

// ExpiredProposalError indicates an approval attempt after the proposal deadline.
// The billing must be regenerated through a fresh survey approval.
type ExpiredProposalError struct {
	Reference string
	ExpiredAt time.Time
}

// NewExpiredProposalError creates an ExpiredProposalError for the given billing reference.
func NewExpiredProposalError(reference string, expiredAt time.Time) *ExpiredProposalError {
	return &ExpiredProposalError{Reference: reference, ExpiredAt: expiredAt}
}

func (e *ExpiredProposalError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s expired at %s",
		ErrExpiredProposal, e.Reference, e.ExpiredAt.UTC().Format(time.RFC3339)))
}

func (e *ExpiredProposalError) Unwrap() error {
	return ErrExpiredProposal
}

// InsufficientDataError indicates that billing generation was attempted for a
// survey requiring additional equipment without any recorded cost items.
// Surfaced to the survey approver as a blocking validation failure.
type InsufficientDataError struct {
	ParamName string
}

// NewInsufficientDataError creates an InsufficientDataError for the missing data.
func NewInsufficientDataError(paramName string) *InsufficientDataError {
	return &InsufficientDataError{ParamName: paramName}
}

func (e *InsufficientDataError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrInsufficientData, e.ParamName))
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

// IntegrityError indicates a terminal inconsistency between entities, e.g. a
// billing marked paid while its survey is not approved. Must be logged and
// surfaced for manual reconciliation; never silently auto-corrected.
type IntegrityError struct {
	Details string
	Cause   error
}

// NewIntegrityError creates an IntegrityError without an underlying cause.
func NewIntegrityError(details string) *IntegrityError {
	return &IntegrityError{Details: details}
}

// NewIntegrityErrorWithCause creates an IntegrityError wrapping an underlying cause.
func NewIntegrityErrorWithCause(details string, cause error) *IntegrityError {
	return &IntegrityError{Details: details, Cause: cause}
}

func (e *IntegrityError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrIntegrity, e.Details, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrIntegrity, e.Details))
}

func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}
