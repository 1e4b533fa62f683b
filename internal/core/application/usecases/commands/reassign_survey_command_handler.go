package commands

import (
	"context"
)

// ReassignSurveyCommandHandler reassigns a rejected survey to another
// technician, putting it back in progress.
type ReassignSurveyCommandHandler struct {
	uowFactory SurveyUoWFactory
}

// NewReassignSurveyCommandHandler creates a handler for survey reassignments.
func NewReassignSurveyCommandHandler(uowFactory SurveyUoWFactory) ReassignSurveyCommandHandler {
	return ReassignSurveyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the survey reassignment command.
func (h ReassignSurveyCommandHandler) Handle(ctx context.Context, cmd ReassignSurveyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	surveyRepo := uow.SurveyRepository()

	siteSurvey, err := surveyRepo.Get(ctx, cmd.SurveyID())
	if err != nil {
		return err
	}

	if err = siteSurvey.Reassign(cmd.TechnicianID()); err != nil {
		return err
	}

	if err = surveyRepo.Update(ctx, siteSurvey); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
