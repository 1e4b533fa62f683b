package commands

import (
	"context"
)

// StartSurveyCommandHandler assigns a technician to a scheduled survey and
// moves it in progress.
type StartSurveyCommandHandler struct {
	uowFactory SurveyUoWFactory
}

// NewStartSurveyCommandHandler creates a handler for survey starts.
func NewStartSurveyCommandHandler(uowFactory SurveyUoWFactory) StartSurveyCommandHandler {
	return StartSurveyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the survey start command.
func (h StartSurveyCommandHandler) Handle(ctx context.Context, cmd StartSurveyCommand) error {
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

	if err = siteSurvey.Start(cmd.TechnicianID()); err != nil {
		return err
	}

	if err = surveyRepo.Update(ctx, siteSurvey); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
