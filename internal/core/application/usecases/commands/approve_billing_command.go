package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveBillingCommandIsNotConstructed = errors.New(
	"ApproveBillingCommand must be created via NewApproveBillingCommand constructor",
)

// ApproveBillingCommand represents a customer accepting an additional billing
// proposal, optionally with notes. The actor is the customer making the
// decision; only the order owner may approve.
type ApproveBillingCommand struct { //nolint:recvcheck //using for validation
	billingID kernel.UUID
	actor     kernel.UUID
	notes     string

	guard guard.ConstructorGuard
}

// NewApproveBillingCommand creates a command to record a customer approval.
func NewApproveBillingCommand(billingID, actor kernel.UUID, notes string) (ApproveBillingCommand, error) {
	cmd := ApproveBillingCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBillingID(billingID); err != nil {
		return ApproveBillingCommand{}, err
	}
	if err := cmd.setActor(actor); err != nil {
		return ApproveBillingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveBillingCommand) Validate() error {
	return c.guard.Validate(ErrApproveBillingCommandIsNotConstructed)
}

// BillingID returns the identifier of the approved proposal.
func (c ApproveBillingCommand) BillingID() kernel.UUID {
	return c.billingID
}

// Actor returns the customer recording the decision.
func (c ApproveBillingCommand) Actor() kernel.UUID {
	return c.actor
}

// Notes returns the customer's optional notes.
func (c ApproveBillingCommand) Notes() string {
	return c.notes
}

func (c *ApproveBillingCommand) setBillingID(billingID kernel.UUID) error {
	if err := billingID.Validate(); err != nil {
		return err
	}

	c.billingID = billingID
	return nil
}

func (c *ApproveBillingCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
