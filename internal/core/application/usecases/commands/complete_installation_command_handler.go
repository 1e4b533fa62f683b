package commands

import (
	"context"
	"time"
)

// CompleteInstallationCommandHandler finishes an in-progress installation
// with the technician's closing notes. This is the terminal transition of a
// successful fulfillment workflow.
type CompleteInstallationCommandHandler struct {
	uowFactory InstallationUoWFactory
	now        func() time.Time
}

// NewCompleteInstallationCommandHandler creates a handler for installation completions.
func NewCompleteInstallationCommandHandler(uowFactory InstallationUoWFactory) CompleteInstallationCommandHandler {
	return CompleteInstallationCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the installation completion command.
func (h CompleteInstallationCommandHandler) Handle(ctx context.Context, cmd CompleteInstallationCommand) error {
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

	installationRepo := uow.InstallationRepository()

	activity, err := installationRepo.Get(ctx, cmd.InstallationID())
	if err != nil {
		return err
	}

	if err = activity.Complete(h.now(), cmd.Notes()); err != nil {
		return err
	}

	if err = installationRepo.Update(ctx, activity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
