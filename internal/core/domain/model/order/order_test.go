package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLocation(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(41.0082, 28.9784)
	require.NoError(t, err)
	return loc
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		createdAt := time.Now()

		o, err := order.NewOrder(id, customerID, validLocation(t), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.StatusUnpaid, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.False(t, o.IsPaid())
		assert.False(t, o.IsCancelled())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), validLocation(t), time.Now())
		require.Error(t, err)
	})

	t.Run("invalid customer id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, validLocation(t), time.Now())
		require.Error(t, err)
	})

	t.Run("invalid location", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.Location{}, time.Now())
		require.Error(t, err)
	})

	t.Run("zero createdAt", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validLocation(t), time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), validLocation(t), order.StatusPaid, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, o.Status())
		assert.True(t, o.IsPaid())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), validLocation(t), order.StatusUnknown, time.Now())

		require.Error(t, err)
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validLocation(t), time.Now())
	require.NoError(t, err)

	require.NoError(t, o.ConfirmPayment())
	assert.True(t, o.IsPaid())

	// A second confirmation is an invalid transition.
	err = o.ConfirmPayment()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.True(t, o.IsPaid())
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("paid order can be cancelled", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validLocation(t), time.Now())
		require.NoError(t, err)
		require.NoError(t, o.ConfirmPayment())

		require.NoError(t, o.Cancel())
		assert.True(t, o.IsCancelled())
	})

	t.Run("cancelled order stays cancelled", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validLocation(t), time.Now())
		require.NoError(t, err)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.ConfirmPayment(), errs.ErrInvalidTransition)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
