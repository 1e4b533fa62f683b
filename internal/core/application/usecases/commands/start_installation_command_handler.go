package commands

import (
	"context"
	"time"
)

// StartInstallationCommandHandler assigns a field technician to an activated
// installation and begins the work.
type StartInstallationCommandHandler struct {
	uowFactory InstallationUoWFactory
	now        func() time.Time
}

// NewStartInstallationCommandHandler creates a handler for installation starts.
func NewStartInstallationCommandHandler(uowFactory InstallationUoWFactory) StartInstallationCommandHandler {
	return StartInstallationCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the installation start command.
func (h StartInstallationCommandHandler) Handle(ctx context.Context, cmd StartInstallationCommand) error {
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

	if err = activity.Start(cmd.TechnicianID(), h.now()); err != nil {
		return err
	}

	if err = installationRepo.Update(ctx, activity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
