package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveSurveyCommandIsNotConstructed = errors.New(
	"ApproveSurveyCommand must be created via NewApproveSurveyCommand constructor",
)

// ApproveSurveyCommand represents a back-office review approving a completed
// site survey.
type ApproveSurveyCommand struct { //nolint:recvcheck //using for validation
	surveyID   kernel.UUID
	approvedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveSurveyCommand creates a command to approve a completed survey.
func NewApproveSurveyCommand(surveyID, approvedBy kernel.UUID) (ApproveSurveyCommand, error) {
	cmd := ApproveSurveyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSurveyID(surveyID),
		cmd.setApprovedBy(approvedBy),
	); err != nil {
		return ApproveSurveyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveSurveyCommand) Validate() error {
	return c.guard.Validate(ErrApproveSurveyCommandIsNotConstructed)
}

// SurveyID returns the identifier of the survey under review.
func (c ApproveSurveyCommand) SurveyID() kernel.UUID {
	return c.surveyID
}

// ApprovedBy returns the identifier of the reviewing back-office user.
func (c ApproveSurveyCommand) ApprovedBy() kernel.UUID {
	return c.approvedBy
}

func (c *ApproveSurveyCommand) setSurveyID(surveyID kernel.UUID) error {
	if err := surveyID.Validate(); err != nil {
		return err
	}

	c.surveyID = surveyID
	return nil
}

func (c *ApproveSurveyCommand) setApprovedBy(approvedBy kernel.UUID) error {
	if err := approvedBy.Validate(); err != nil {
		return err
	}

	c.approvedBy = approvedBy
	return nil
}
