package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrExpireBillingsCommandIsNotConstructed = errors.New(
	"ExpireBillingsCommand must be created via NewExpireBillingsCommand constructor",
)

// ExpireBillingsCommand represents a sweep over pending billing proposals
// whose approval deadline has passed. Expired proposals are auto-cancelled;
// the customer must go through a fresh survey approval for a new one.
type ExpireBillingsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireBillingsCommand creates a command to sweep expired proposals.
func NewExpireBillingsCommand() ExpireBillingsCommand {
	return ExpireBillingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireBillingsCommand) Validate() error {
	return c.guard.Validate(ErrExpireBillingsCommandIsNotConstructed)
}
