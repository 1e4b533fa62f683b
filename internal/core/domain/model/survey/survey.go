package survey

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrSurveyIsNotConstructed is returned when a SiteSurvey instance was not
	// created through the NewSiteSurvey or RestoreSiteSurvey factory methods.
	ErrSurveyIsNotConstructed = errors.New(
		"SiteSurvey must be created via NewSiteSurvey or RestoreSiteSurvey constructor")

	// ErrRejectionReasonIsRequired is returned when rejecting a survey without a reason.
	ErrRejectionReasonIsRequired = errs.NewValueIsRequiredError("rejection reason")

	// ErrCostJustificationIsRequired is returned when completing a survey that
	// requires additional equipment without an overall cost justification.
	ErrCostJustificationIsRequired = errs.NewValueIsRequiredError("cost justification")
)

// SiteSurvey represents the technical on-site assessment tied 1:1 to an order.
// It is an aggregate root owning the additional-equipment cost line items
// recorded by the assigned technician.
//
// SiteSurvey follows these invariants:
//   - Exactly one survey exists per order (enforced by persistence uniqueness)
//   - The equipment requirement is only meaningful once status >= Completed
//   - Cost items are immutable once the survey is approved
//   - Status transitions follow the defined state machine
//
// A rejected survey may be reassigned to a different technician; the prior cost
// items are retained and replaced wholesale by the next completion.
type SiteSurvey struct {
	id           kernel.UUID
	orderID      kernel.UUID
	location     kernel.Location
	technicianID *kernel.UUID
	status       Status

	requiresAdditionalEquipment bool
	costJustification           string
	costItems                   []*AdditionalCost

	approvedBy      *kernel.UUID
	approvedAt      *time.Time
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewSiteSurvey creates a survey in Scheduled status for a freshly paid order.
// The order's installation location is copied onto the survey.
func NewSiteSurvey(id, orderID kernel.UUID, location kernel.Location) (*SiteSurvey, error) {
	s := &SiteSurvey{
		status: StatusScheduled,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSiteSurvey reconstructs a SiteSurvey aggregate from persistent storage,
// including its cost line items and review outcome.
func RestoreSiteSurvey(
	id, orderID kernel.UUID,
	location kernel.Location,
	technicianID *kernel.UUID,
	status Status,
	requiresAdditionalEquipment bool,
	costJustification string,
	costItems []*AdditionalCost,
	approvedBy *kernel.UUID,
	approvedAt *time.Time,
	rejectionReason string,
) (*SiteSurvey, error) {
	s := &SiteSurvey{
		requiresAdditionalEquipment: requiresAdditionalEquipment,
		costJustification:           costJustification,
		approvedAt:                  approvedAt,
		rejectionReason:             rejectionReason,
		guard:                       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setLocation(location),
		s.setTechnicianID(technicianID),
		s.setStatus(status),
		s.setCostItems(costItems),
		s.setApprovedBy(approvedBy),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the SiteSurvey instance was properly constructed.
func (s *SiteSurvey) Validate() error {
	if s == nil {
		return ErrSurveyIsNotConstructed
	}
	return s.guard.Validate(ErrSurveyIsNotConstructed)
}

// IsEqual compares two surveys by their unique identifiers.
func (s *SiteSurvey) IsEqual(other *SiteSurvey) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the survey's unique identifier.
func (s *SiteSurvey) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the order this survey assesses.
func (s *SiteSurvey) OrderID() kernel.UUID {
	return s.orderID
}

// Location returns the assessed installation location.
func (s *SiteSurvey) Location() kernel.Location {
	return s.location
}

// TechnicianID returns the assigned technician, nil if not yet assigned.
func (s *SiteSurvey) TechnicianID() *kernel.UUID {
	return s.technicianID
}

// Status returns the current survey status.
func (s *SiteSurvey) Status() Status {
	return s.status
}

// RequiresAdditionalEquipment reports whether the technician found extra
// billable equipment necessary. Only meaningful once status >= Completed.
func (s *SiteSurvey) RequiresAdditionalEquipment() bool {
	return s.requiresAdditionalEquipment
}

// CostJustification returns the technician's overall justification for the
// additional equipment.
func (s *SiteSurvey) CostJustification() string {
	return s.costJustification
}

// CostItems returns the recorded additional-equipment line items.
func (s *SiteSurvey) CostItems() []*AdditionalCost {
	return s.costItems
}

// ApprovedBy returns the reviewer who approved the survey, nil if not approved.
func (s *SiteSurvey) ApprovedBy() *kernel.UUID {
	return s.approvedBy
}

// ApprovedAt returns the approval timestamp, nil if not approved.
func (s *SiteSurvey) ApprovedAt() *time.Time {
	return s.approvedAt
}

// RejectionReason returns the reviewer's reason for the last rejection.
func (s *SiteSurvey) RejectionReason() string {
	return s.rejectionReason
}

// IsApproved reports whether the survey has been approved.
func (s *SiteSurvey) IsApproved() bool {
	return s.status == StatusApproved
}

// Subtotal returns the aggregated cost of all recorded line items.
func (s *SiteSurvey) Subtotal() decimal.Decimal {
	return Subtotal(s.costItems)
}

// Start assigns a technician and moves the survey to InProgress.
// Valid only from Scheduled status.
func (s *SiteSurvey) Start(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Start()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.technicianID = &technicianID
	return nil
}

// Complete records the technician's assessment and moves the survey to Completed.
// Any previously recorded cost items (e.g. from a rejected cycle) are replaced
// wholesale by the given set.
//
// Business rules:
//   - Valid only from InProgress status
//   - A survey requiring additional equipment must carry a cost justification
//   - A survey without additional equipment carries no cost items
func (s *SiteSurvey) Complete(
	requiresAdditionalEquipment bool,
	costJustification string,
	costItems []*AdditionalCost,
) error {
	if requiresAdditionalEquipment && costJustification == "" {
		return ErrCostJustificationIsRequired
	}

	items := costItems
	if !requiresAdditionalEquipment {
		items = nil
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.requiresAdditionalEquipment = requiresAdditionalEquipment
	s.costJustification = costJustification
	s.costItems = items
	return nil
}

// Approve marks the survey as approved by the given actor.
// Valid from Completed status; cost items become immutable afterwards.
// Re-approving an already approved survey is allowed and records the new
// reviewer and time - the path to a replacement billing proposal after the
// customer rejected or let the previous one expire.
func (s *SiteSurvey) Approve(actor kernel.UUID, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Approve()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.approvedBy = &actor
	s.approvedAt = &now
	return nil
}

// Reject marks the survey as rejected with a mandatory reason.
// Valid from InProgress and Completed status.
func (s *SiteSurvey) Reject(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	newStatus, err := s.status.Reject()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.rejectionReason = reason
	return nil
}

// Reassign hands a rejected survey to a new technician and re-enters InProgress.
// Prior cost items are retained; the next Complete call replaces them.
func (s *SiteSurvey) Reassign(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Reassign()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.technicianID = &technicianID
	s.approvedBy = nil
	s.approvedAt = nil
	return nil
}

// Cancel marks the survey unusable after its order was cancelled.
func (s *SiteSurvey) Cancel() error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *SiteSurvey) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *SiteSurvey) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *SiteSurvey) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *SiteSurvey) setTechnicianID(technicianID *kernel.UUID) error {
	if technicianID != nil {
		if err := technicianID.Validate(); err != nil {
			return err
		}
	}
	s.technicianID = technicianID
	return nil
}

func (s *SiteSurvey) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *SiteSurvey) setCostItems(costItems []*AdditionalCost) error {
	for _, item := range costItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.costItems = costItems
	return nil
}

func (s *SiteSurvey) setApprovedBy(approvedBy *kernel.UUID) error {
	if approvedBy != nil {
		if err := approvedBy.Validate(); err != nil {
			return err
		}
	}
	s.approvedBy = approvedBy
	return nil
}
