package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectBillingCommandIsNotConstructed = errors.New(
	"RejectBillingCommand must be created via NewRejectBillingCommand constructor",
)

// RejectBillingCommand represents a customer declining an additional billing
// proposal. Rejection is final; installation stays blocked until the order is
// cancelled or a new survey cycle produces a fresh proposal.
type RejectBillingCommand struct { //nolint:recvcheck //using for validation
	billingID kernel.UUID
	actor     kernel.UUID
	notes     string

	guard guard.ConstructorGuard
}

// NewRejectBillingCommand creates a command to record a customer rejection.
func NewRejectBillingCommand(billingID, actor kernel.UUID, notes string) (RejectBillingCommand, error) {
	cmd := RejectBillingCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBillingID(billingID); err != nil {
		return RejectBillingCommand{}, err
	}
	if err := cmd.setActor(actor); err != nil {
		return RejectBillingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectBillingCommand) Validate() error {
	return c.guard.Validate(ErrRejectBillingCommandIsNotConstructed)
}

// BillingID returns the identifier of the rejected proposal.
func (c RejectBillingCommand) BillingID() kernel.UUID {
	return c.billingID
}

// Actor returns the customer recording the decision.
func (c RejectBillingCommand) Actor() kernel.UUID {
	return c.actor
}

// Notes returns the customer's optional notes.
func (c RejectBillingCommand) Notes() string {
	return c.notes
}

func (c *RejectBillingCommand) setBillingID(billingID kernel.UUID) error {
	if err := billingID.Validate(); err != nil {
		return err
	}

	c.billingID = billingID
	return nil
}

func (c *RejectBillingCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
