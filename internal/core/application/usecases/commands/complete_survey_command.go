package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCompleteSurveyCommandIsNotConstructed = errors.New(
	"CompleteSurveyCommand must be created via NewCompleteSurveyCommand constructor",
)

// CostItemParam carries one cost line item reported by the field technician.
// The values are validated when the domain cost item is constructed.
type CostItemParam struct {
	ItemName      string
	CostType      string
	Quantity      int
	UnitPrice     decimal.Decimal
	IsRequired    bool
	Justification string
}

// CompleteSurveyCommand represents a technician's survey findings: whether the
// installation needs additional equipment and, if so, the priced cost items
// with their justification.
//
// Example:
//
//	items := []CostItemParam{{
//	    ItemName: "WiFi extender", CostType: "Extender", Quantity: 2,
//	    UnitPrice: decimal.RequireFromString("45.00"),
//	    IsRequired: true, Justification: "weak signal on upper floor",
//	}}
//	cmd, err := NewCompleteSurveyCommand(surveyID, true, "weak signal on upper floor", items)
type CompleteSurveyCommand struct { //nolint:recvcheck //using for validation
	surveyID                    kernel.UUID
	requiresAdditionalEquipment bool
	costJustification           string
	costItems                   []CostItemParam

	guard guard.ConstructorGuard
}

// NewCompleteSurveyCommand creates a command to record survey findings.
func NewCompleteSurveyCommand(
	surveyID kernel.UUID,
	requiresAdditionalEquipment bool,
	costJustification string,
	costItems []CostItemParam,
) (CompleteSurveyCommand, error) {
	cmd := CompleteSurveyCommand{
		requiresAdditionalEquipment: requiresAdditionalEquipment,
		costJustification:           costJustification,
		costItems:                   costItems,
		guard:                       guard.NewConstructorGuard(),
	}

	if err := cmd.setSurveyID(surveyID); err != nil {
		return CompleteSurveyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteSurveyCommand) Validate() error {
	return c.guard.Validate(ErrCompleteSurveyCommandIsNotConstructed)
}

// SurveyID returns the identifier of the completed survey.
func (c CompleteSurveyCommand) SurveyID() kernel.UUID {
	return c.surveyID
}

// RequiresAdditionalEquipment reports the technician's equipment finding.
func (c CompleteSurveyCommand) RequiresAdditionalEquipment() bool {
	return c.requiresAdditionalEquipment
}

// CostJustification returns the overall justification for the extra costs.
func (c CompleteSurveyCommand) CostJustification() string {
	return c.costJustification
}

// CostItems returns the reported cost line items.
func (c CompleteSurveyCommand) CostItems() []CostItemParam {
	return c.costItems
}

func (c *CompleteSurveyCommand) setSurveyID(surveyID kernel.UUID) error {
	if err := surveyID.Validate(); err != nil {
		return err
	}

	c.surveyID = surveyID
	return nil
}
