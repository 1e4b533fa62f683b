package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReassignSurveyCommandIsNotConstructed = errors.New(
	"ReassignSurveyCommand must be created via NewReassignSurveyCommand constructor",
)

// ReassignSurveyCommand represents handing a rejected survey to another
// technician for rework. Previously recorded cost items are retained until the
// new technician completes the survey with a fresh set.
type ReassignSurveyCommand struct { //nolint:recvcheck //using for validation
	surveyID     kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignSurveyCommand creates a command to reassign a rejected survey.
func NewReassignSurveyCommand(surveyID, technicianID kernel.UUID) (ReassignSurveyCommand, error) {
	cmd := ReassignSurveyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSurveyID(surveyID),
		cmd.setTechnicianID(technicianID),
	); err != nil {
		return ReassignSurveyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignSurveyCommand) Validate() error {
	return c.guard.Validate(ErrReassignSurveyCommandIsNotConstructed)
}

// SurveyID returns the identifier of the survey to reassign.
func (c ReassignSurveyCommand) SurveyID() kernel.UUID {
	return c.surveyID
}

// TechnicianID returns the identifier of the newly assigned technician.
func (c ReassignSurveyCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *ReassignSurveyCommand) setSurveyID(surveyID kernel.UUID) error {
	if err := surveyID.Validate(); err != nil {
		return err
	}

	c.surveyID = surveyID
	return nil
}

func (c *ReassignSurveyCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}
