package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmOrderPaymentCommandIsNotConstructed = errors.New(
	"ConfirmOrderPaymentCommand must be created via NewConfirmOrderPaymentCommand constructor",
)

// ConfirmOrderPaymentCommand represents a payment confirmation received from
// the payment provider for an order.
//
// Example:
//
//	cmd, err := NewConfirmOrderPaymentCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid payment confirmation: %w", err)
//	}
//
//	handler := NewConfirmOrderPaymentCommandHandler(uowFactory, inventory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to confirm payment: %w", err)
//	}
type ConfirmOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderPaymentCommand creates a command to confirm an order payment.
func NewConfirmOrderPaymentCommand(orderID kernel.UUID) (ConfirmOrderPaymentCommand, error) {
	cmd := ConfirmOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmOrderPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the paid order.
func (c ConfirmOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
