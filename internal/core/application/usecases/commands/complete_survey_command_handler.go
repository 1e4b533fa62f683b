package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/survey"
)

// CompleteSurveyCommandHandler records a technician's survey findings.
// When the survey requires additional equipment the reported cost items
// replace any previously recorded set wholesale.
type CompleteSurveyCommandHandler struct {
	uowFactory SurveyUoWFactory
}

// NewCompleteSurveyCommandHandler creates a handler for survey completions.
func NewCompleteSurveyCommandHandler(uowFactory SurveyUoWFactory) CompleteSurveyCommandHandler {
	return CompleteSurveyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the survey completion command.
func (h CompleteSurveyCommandHandler) Handle(ctx context.Context, cmd CompleteSurveyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildCostItems(cmd.CostItems())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = siteSurvey.Complete(cmd.RequiresAdditionalEquipment(), cmd.CostJustification(), items); err != nil {
		return err
	}

	if err = surveyRepo.Update(ctx, siteSurvey); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildCostItems(params []CostItemParam) ([]*survey.AdditionalCost, error) {
	if len(params) == 0 {
		return nil, nil
	}

	items := make([]*survey.AdditionalCost, 0, len(params))
	for _, p := range params {
		costType, err := survey.CostTypeFromString(p.CostType)
		if err != nil {
			return nil, err
		}

		item, err := survey.NewAdditionalCost(
			p.ItemName, costType, p.Quantity, p.UnitPrice, p.IsRequired, p.Justification)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
