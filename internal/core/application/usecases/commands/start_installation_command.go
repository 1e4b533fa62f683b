package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartInstallationCommandIsNotConstructed = errors.New(
	"StartInstallationCommand must be created via NewStartInstallationCommand constructor",
)

// StartInstallationCommand represents a field technician beginning an
// activated installation.
type StartInstallationCommand struct { //nolint:recvcheck //using for validation
	installationID kernel.UUID
	technicianID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartInstallationCommand creates a command to start an installation.
func NewStartInstallationCommand(installationID, technicianID kernel.UUID) (StartInstallationCommand, error) {
	cmd := StartInstallationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInstallationID(installationID),
		cmd.setTechnicianID(technicianID),
	); err != nil {
		return StartInstallationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartInstallationCommand) Validate() error {
	return c.guard.Validate(ErrStartInstallationCommandIsNotConstructed)
}

// InstallationID returns the identifier of the installation activity.
func (c StartInstallationCommand) InstallationID() kernel.UUID {
	return c.installationID
}

// TechnicianID returns the identifier of the field technician.
func (c StartInstallationCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *StartInstallationCommand) setInstallationID(installationID kernel.UUID) error {
	if err := installationID.Validate(); err != nil {
		return err
	}

	c.installationID = installationID
	return nil
}

func (c *StartInstallationCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}
