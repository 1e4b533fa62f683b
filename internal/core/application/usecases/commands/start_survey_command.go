package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartSurveyCommandIsNotConstructed = errors.New(
	"StartSurveyCommand must be created via NewStartSurveyCommand constructor",
)

// StartSurveyCommand represents a technician beginning a scheduled site visit.
type StartSurveyCommand struct { //nolint:recvcheck //using for validation
	surveyID     kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartSurveyCommand creates a command to start a scheduled survey.
func NewStartSurveyCommand(surveyID, technicianID kernel.UUID) (StartSurveyCommand, error) {
	cmd := StartSurveyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSurveyID(surveyID),
		cmd.setTechnicianID(technicianID),
	); err != nil {
		return StartSurveyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSurveyCommand) Validate() error {
	return c.guard.Validate(ErrStartSurveyCommandIsNotConstructed)
}

// SurveyID returns the identifier of the survey to start.
func (c StartSurveyCommand) SurveyID() kernel.UUID {
	return c.surveyID
}

// TechnicianID returns the identifier of the visiting technician.
func (c StartSurveyCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *StartSurveyCommand) setSurveyID(surveyID kernel.UUID) error {
	if err := surveyID.Validate(); err != nil {
		return err
	}

	c.surveyID = surveyID
	return nil
}

func (c *StartSurveyCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}
