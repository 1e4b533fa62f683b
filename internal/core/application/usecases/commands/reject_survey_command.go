package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRejectSurveyCommandIsNotConstructed = errors.New(
		"RejectSurveyCommand must be created via NewRejectSurveyCommand constructor",
	)
	ErrRejectionReasonIsRequired = errors.New("rejection reason is required")
)

// RejectSurveyCommand represents a back-office review rejecting a survey,
// sending it back for reassignment.
type RejectSurveyCommand struct { //nolint:recvcheck //using for validation
	surveyID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectSurveyCommand creates a command to reject a survey with a reason.
func NewRejectSurveyCommand(surveyID kernel.UUID, reason string) (RejectSurveyCommand, error) {
	cmd := RejectSurveyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSurveyID(surveyID),
		cmd.setReason(reason),
	); err != nil {
		return RejectSurveyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectSurveyCommand) Validate() error {
	return c.guard.Validate(ErrRejectSurveyCommandIsNotConstructed)
}

// SurveyID returns the identifier of the survey under review.
func (c RejectSurveyCommand) SurveyID() kernel.UUID {
	return c.surveyID
}

// Reason returns the reviewer's rejection reason.
func (c RejectSurveyCommand) Reason() string {
	return c.reason
}

func (c *RejectSurveyCommand) setSurveyID(surveyID kernel.UUID) error {
	if err := surveyID.Validate(); err != nil {
		return err
	}

	c.surveyID = surveyID
	return nil
}

func (c *RejectSurveyCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
