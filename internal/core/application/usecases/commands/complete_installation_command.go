package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteInstallationCommandIsNotConstructed = errors.New(
	"CompleteInstallationCommand must be created via NewCompleteInstallationCommand constructor",
)

// CompleteInstallationCommand represents a field technician finishing an
// installation with closing notes.
type CompleteInstallationCommand struct { //nolint:recvcheck //using for validation
	installationID kernel.UUID
	notes          string

	guard guard.ConstructorGuard
}

// NewCompleteInstallationCommand creates a command to complete an installation.
func NewCompleteInstallationCommand(installationID kernel.UUID, notes string) (CompleteInstallationCommand, error) {
	cmd := CompleteInstallationCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInstallationID(installationID); err != nil {
		return CompleteInstallationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteInstallationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInstallationCommandIsNotConstructed)
}

// InstallationID returns the identifier of the installation activity.
func (c CompleteInstallationCommand) InstallationID() kernel.UUID {
	return c.installationID
}

// Notes returns the technician's closing notes.
func (c CompleteInstallationCommand) Notes() string {
	return c.notes
}

func (c *CompleteInstallationCommand) setInstallationID(installationID kernel.UUID) error {
	if err := installationID.Validate(); err != nil {
		return err
	}

	c.installationID = installationID
	return nil
}
