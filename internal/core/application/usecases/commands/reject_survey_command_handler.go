package commands

import (
	"context"
)

// RejectSurveyCommandHandler rejects a survey during back-office review.
// The survey must be reassigned to a technician before it can proceed.
type RejectSurveyCommandHandler struct {
	uowFactory SurveyUoWFactory
}

// NewRejectSurveyCommandHandler creates a handler for survey rejections.
func NewRejectSurveyCommandHandler(uowFactory SurveyUoWFactory) RejectSurveyCommandHandler {
	return RejectSurveyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the survey rejection command.
func (h RejectSurveyCommandHandler) Handle(ctx context.Context, cmd RejectSurveyCommand) error {
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

	if err = siteSurvey.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = surveyRepo.Update(ctx, siteSurvey); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
