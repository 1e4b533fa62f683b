package billing

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrBillingIsNotConstructed is returned when an AdditionalBilling instance
	// was not created through a factory method.
	ErrBillingIsNotConstructed = errors.New(
		"AdditionalBilling must be created via NewAdditionalBilling or RestoreAdditionalBilling constructor")

	// ErrExpiresAtIsRequired is returned when a proposal carries no expiry deadline.
	ErrExpiresAtIsRequired = errs.NewValueIsRequiredError("expiresAt")
)

// DefaultProposalValidity is how long a proposal stays approvable unless
// configured otherwise (7 days).
const DefaultProposalValidity = 7 * 24 * time.Hour

// AdditionalBilling is a billing proposal for extra equipment discovered during
// a site survey, derived 1:1 from that survey. It is a financial record: never
// deleted, and its status only moves forward along the allowed transition graph.
//
// Amount invariants:
//   - subtotal = sum of the survey's cost item total prices (2 fractional digits)
//   - taxAmount = 0.00 if tax exempt, else subtotal x VAT rate rounded half-up to 2 digits
//   - totalAmount = subtotal + taxAmount, not independently rounded
//
// An approval attempt at or past expiresAt fails with ExpiredProposalError and
// leaves the status unchanged.
type AdditionalBilling struct {
	id        kernel.UUID
	surveyID  kernel.UUID
	orderID   kernel.UUID
	reference string

	subtotal    decimal.Decimal
	taxAmount   decimal.Decimal
	totalAmount decimal.Decimal
	isTaxExempt bool

	status    Status
	expiresAt time.Time

	sentForApprovalAt   *time.Time
	customerRespondedAt *time.Time
	approvedAt          *time.Time
	rejectedAt          *time.Time
	paidAt              *time.Time
	respondedBy         *kernel.UUID
	customerNotes       string

	guard guard.ConstructorGuard
}

// NewAdditionalBilling generates a proposal in Draft status from an approved
// survey's cost items. SendForApproval moves it to the customer-facing
// PendingApproval status and stamps the send time.
//
// The amounts are derived, never supplied: subtotal from the cost aggregation,
// tax from the company tax policy inputs, total from their sum. Generation
// fails with InsufficientDataError when no cost items exist - a survey
// requiring additional equipment without recorded costs cannot be billed.
func NewAdditionalBilling(
	id, surveyID, orderID kernel.UUID,
	reference string,
	costItems []*survey.AdditionalCost,
	isTaxExempt bool,
	vatRate decimal.Decimal,
	now time.Time,
	validity time.Duration,
) (*AdditionalBilling, error) {
	if len(costItems) == 0 {
		return nil, errs.NewInsufficientDataError("no cost items recorded for the survey")
	}
	if validity <= 0 {
		validity = DefaultProposalValidity
	}

	subtotal := survey.Subtotal(costItems)
	taxAmount := ComputeTax(subtotal, isTaxExempt, vatRate)

	b := &AdditionalBilling{
		subtotal:    subtotal,
		taxAmount:   taxAmount,
		totalAmount: subtotal.Add(taxAmount),
		isTaxExempt: isTaxExempt,
		status:      StatusDraft,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setSurveyID(surveyID),
		b.setOrderID(orderID),
		b.setReference(reference),
		b.setExpiresAt(now.Add(validity)),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreAdditionalBilling reconstructs an AdditionalBilling aggregate from
// persistent storage with its derived amounts and transition timestamps.
func RestoreAdditionalBilling(
	id, surveyID, orderID kernel.UUID,
	reference string,
	subtotal, taxAmount, totalAmount decimal.Decimal,
	isTaxExempt bool,
	status Status,
	expiresAt time.Time,
	sentForApprovalAt, customerRespondedAt, approvedAt, rejectedAt, paidAt *time.Time,
	respondedBy *kernel.UUID,
	customerNotes string,
) (*AdditionalBilling, error) {
	b := &AdditionalBilling{
		subtotal:            subtotal,
		taxAmount:           taxAmount,
		totalAmount:         totalAmount,
		isTaxExempt:         isTaxExempt,
		sentForApprovalAt:   sentForApprovalAt,
		customerRespondedAt: customerRespondedAt,
		approvedAt:          approvedAt,
		rejectedAt:          rejectedAt,
		paidAt:              paidAt,
		respondedBy:         respondedBy,
		customerNotes:       customerNotes,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setSurveyID(surveyID),
		b.setOrderID(orderID),
		b.setReference(reference),
		b.setStatus(status),
		b.setExpiresAt(expiresAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the AdditionalBilling instance was properly constructed.
func (b *AdditionalBilling) Validate() error {
	if b == nil {
		return ErrBillingIsNotConstructed
	}
	return b.guard.Validate(ErrBillingIsNotConstructed)
}

// IsEqual compares two billings by their unique identifiers.
func (b *AdditionalBilling) IsEqual(other *AdditionalBilling) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the billing's unique identifier.
func (b *AdditionalBilling) ID() kernel.UUID {
	return b.id
}

// SurveyID returns the identifier of the survey this proposal derives from.
func (b *AdditionalBilling) SurveyID() kernel.UUID {
	return b.surveyID
}

// OrderID returns the identifier of the order being fulfilled.
func (b *AdditionalBilling) OrderID() kernel.UUID {
	return b.orderID
}

// Reference returns the unique billing reference (ADD + YYMMDD + suffix).
func (b *AdditionalBilling) Reference() string {
	return b.reference
}

// Subtotal returns the aggregated equipment cost with 2 fractional digits.
func (b *AdditionalBilling) Subtotal() decimal.Decimal {
	return b.subtotal
}

// TaxAmount returns the applied tax with 2 fractional digits.
func (b *AdditionalBilling) TaxAmount() decimal.Decimal {
	return b.taxAmount
}

// TotalAmount returns subtotal + tax.
func (b *AdditionalBilling) TotalAmount() decimal.Decimal {
	return b.totalAmount
}

// IsTaxExempt reports whether the customer is exempt from tax.
func (b *AdditionalBilling) IsTaxExempt() bool {
	return b.isTaxExempt
}

// Status returns the current proposal status.
func (b *AdditionalBilling) Status() Status {
	return b.status
}

// ExpiresAt returns the approval deadline.
func (b *AdditionalBilling) ExpiresAt() time.Time {
	return b.expiresAt
}

// SentForApprovalAt returns when the proposal was sent to the customer.
func (b *AdditionalBilling) SentForApprovalAt() *time.Time {
	return b.sentForApprovalAt
}

// CustomerRespondedAt returns when the customer approved or rejected.
func (b *AdditionalBilling) CustomerRespondedAt() *time.Time {
	return b.customerRespondedAt
}

// ApprovedAt returns the approval timestamp, nil if never approved.
func (b *AdditionalBilling) ApprovedAt() *time.Time {
	return b.approvedAt
}

// RejectedAt returns the rejection timestamp, nil if never rejected.
func (b *AdditionalBilling) RejectedAt() *time.Time {
	return b.rejectedAt
}

// PaidAt returns the payment confirmation timestamp, nil if unpaid.
func (b *AdditionalBilling) PaidAt() *time.Time {
	return b.paidAt
}

// RespondedBy returns the customer who approved or rejected, nil before a
// decision is recorded.
func (b *AdditionalBilling) RespondedBy() *kernel.UUID {
	return b.respondedBy
}

// CustomerNotes returns the notes supplied with the customer's decision.
func (b *AdditionalBilling) CustomerNotes() string {
	return b.customerNotes
}

// IsPaid reports whether the proposal has been paid.
func (b *AdditionalBilling) IsPaid() bool {
	return b.status == StatusPaid
}

// IsExpired reports whether the approval deadline has passed.
func (b *AdditionalBilling) IsExpired(now time.Time) bool {
	return !now.Before(b.expiresAt)
}

// SendForApproval hands the drafted proposal to the customer for a decision,
// starting the approval window. Valid only from Draft status.
func (b *AdditionalBilling) SendForApproval(now time.Time) error {
	newStatus, err := b.status.SendForApproval()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.sentForApprovalAt = &now
	return nil
}

// Approve records the customer's acceptance of the proposal.
//
// Business rules:
//   - Fails with ExpiredProposalError if now() >= expiresAt, leaving the status unchanged
//   - Fails with InvalidTransitionError unless status is PendingApproval
//
// Approval alone does not trigger installation activation; payment does.
func (b *AdditionalBilling) Approve(actor kernel.UUID, now time.Time, notes string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if b.IsExpired(now) {
		return errs.NewExpiredProposalError(b.reference, b.expiresAt)
	}

	newStatus, err := b.status.Approve()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.approvedAt = &now
	b.customerRespondedAt = &now
	b.respondedBy = &actor
	b.customerNotes = notes
	return nil
}

// Reject records the customer's rejection of the proposal. No expiry check is
// needed; a rejected proposal never transitions to paid.
func (b *AdditionalBilling) Reject(actor kernel.UUID, now time.Time, notes string) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := b.status.Reject()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.rejectedAt = &now
	b.customerRespondedAt = &now
	b.respondedBy = &actor
	b.customerNotes = notes
	return nil
}

// MarkPaid records the external payment confirmation.
// Valid only from Approved status; payment unlocks installation activation.
func (b *AdditionalBilling) MarkPaid(now time.Time) error {
	newStatus, err := b.status.MarkPaid()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.paidAt = &now
	return nil
}

// Cancel applies an administrative or cascade cancellation.
func (b *AdditionalBilling) Cancel() error {
	newStatus, err := b.status.Cancel()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Expire auto-cancels a pending proposal whose deadline has passed.
// Returns an InvalidTransitionError when the proposal is not pending, or a
// validation error when the deadline has not been reached yet.
func (b *AdditionalBilling) Expire(now time.Time) error {
	if b.status != StatusPendingApproval {
		return errs.NewInvalidTransitionError("billing", b.status.String(), StatusCancelled.String())
	}
	if !b.IsExpired(now) {
		return errs.NewValueIsInvalidError("billing has not reached its expiry deadline")
	}

	b.status = StatusCancelled
	return nil
}

func (b *AdditionalBilling) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *AdditionalBilling) setSurveyID(surveyID kernel.UUID) error {
	if err := surveyID.Validate(); err != nil {
		return err
	}
	b.surveyID = surveyID
	return nil
}

func (b *AdditionalBilling) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	b.orderID = orderID
	return nil
}

func (b *AdditionalBilling) setReference(reference string) error {
	if err := ValidateReference(reference); err != nil {
		return err
	}
	b.reference = reference
	return nil
}

func (b *AdditionalBilling) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}

func (b *AdditionalBilling) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return ErrExpiresAtIsRequired
	}
	b.expiresAt = expiresAt
	return nil
}
