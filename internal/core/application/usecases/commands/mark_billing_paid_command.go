package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkBillingPaidCommandIsNotConstructed = errors.New(
	"MarkBillingPaidCommand must be created via NewMarkBillingPaidCommand constructor",
)

// MarkBillingPaidCommand represents an external payment confirmation for an
// approved additional billing proposal. Payment is the trigger that unlocks
// installation activation.
type MarkBillingPaidCommand struct { //nolint:recvcheck //using for validation
	billingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkBillingPaidCommand creates a command to record a billing payment.
func NewMarkBillingPaidCommand(billingID kernel.UUID) (MarkBillingPaidCommand, error) {
	cmd := MarkBillingPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBillingID(billingID); err != nil {
		return MarkBillingPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkBillingPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkBillingPaidCommandIsNotConstructed)
}

// BillingID returns the identifier of the paid proposal.
func (c MarkBillingPaidCommand) BillingID() kernel.UUID {
	return c.billingID
}

func (c *MarkBillingPaidCommand) setBillingID(billingID kernel.UUID) error {
	if err := billingID.Validate(); err != nil {
		return err
	}

	c.billingID = billingID
	return nil
}
