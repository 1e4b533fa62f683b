package services_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func mustLocation(t *testing.T) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(41.0082, 28.9784)
	require.NoError(t, err)
	return location
}

func paidOrder(t *testing.T) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), mustLocation(t), testNow)
	require.NoError(t, err)
	require.NoError(t, ord.ConfirmPayment())
	return ord
}

func approvedSurvey(t *testing.T, ord *order.Order, withEquipment bool) *survey.SiteSurvey {
	t.Helper()
	s, err := survey.NewSiteSurvey(kernel.NewUUID(), ord.ID(), mustLocation(t))
	require.NoError(t, err)
	require.NoError(t, s.Start(kernel.NewUUID()))

	if withEquipment {
		cost, err := survey.NewAdditionalCost(
			"WiFi extender", survey.CostTypeExtender, 1,
			decimal.RequireFromString("45.00"), true, "weak signal on upper floor")
		require.NoError(t, err)
		require.NoError(t, s.Complete(true, "weak signal on upper floor", []*survey.AdditionalCost{cost}))
	} else {
		require.NoError(t, s.Complete(false, "", nil))
	}

	require.NoError(t, s.Approve(kernel.NewUUID(), testNow))
	return s
}

func paidBilling(t *testing.T, s *survey.SiteSurvey) *billing.AdditionalBilling {
	t.Helper()
	b, err := billing.NewAdditionalBilling(
		kernel.NewUUID(), s.ID(), s.OrderID(),
		billing.GenerateReference(testNow),
		s.CostItems(),
		false, billing.DefaultVATRate,
		testNow, billing.DefaultProposalValidity)
	require.NoError(t, err)
	require.NoError(t, b.SendForApproval(testNow))
	require.NoError(t, b.Approve(kernel.NewUUID(), testNow.Add(time.Hour), ""))
	require.NoError(t, b.MarkPaid(testNow.Add(2*time.Hour)))
	return b
}

func assertNotEligible(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	var notEligible *errs.NotEligibleError
	require.True(t, errors.As(err, &notEligible))
	assert.Equal(t, reason, notEligible.Reason)
}

func Test_InstallationActivator_Activate(t *testing.T) {
	activator := services.NewInstallationActivator()

	t.Run("activates when no additional equipment is required", func(t *testing.T) {
		ord := paidOrder(t)
		s := approvedSurvey(t, ord, false)

		activity, err := activator.Activate(ord, s, nil, testNow)

		require.NoError(t, err)
		assert.Equal(t, installation.StatusPending, activity.Status())
		assert.True(t, activity.OrderID().IsEqual(ord.ID()))
		assert.True(t, activity.SurveyID().IsEqual(s.ID()))
		assert.Nil(t, activity.BillingReference())
		assert.Equal(t, testNow, activity.ActivatedAt())
	})

	t.Run("activates when the additional billing is paid", func(t *testing.T) {
		ord := paidOrder(t)
		s := approvedSurvey(t, ord, true)
		b := paidBilling(t, s)

		activity, err := activator.Activate(ord, s, b, testNow)

		require.NoError(t, err)
		require.NotNil(t, activity.BillingReference())
		assert.Equal(t, b.Reference(), *activity.BillingReference())
	})

	t.Run("unpaid order is not eligible", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), mustLocation(t), testNow)
		require.NoError(t, err)
		s, err := survey.NewSiteSurvey(kernel.NewUUID(), ord.ID(), mustLocation(t))
		require.NoError(t, err)

		_, err = activator.Activate(ord, s, nil, testNow)

		assertNotEligible(t, err, "order is not paid")
	})

	t.Run("cancelled order is permanently ineligible", func(t *testing.T) {
		ord := paidOrder(t)
		s := approvedSurvey(t, ord, false)
		require.NoError(t, ord.Cancel())

		_, err := activator.Activate(ord, s, nil, testNow)

		assertNotEligible(t, err, "order is cancelled")
	})

	t.Run("unapproved survey is not eligible", func(t *testing.T) {
		ord := paidOrder(t)
		s, err := survey.NewSiteSurvey(kernel.NewUUID(), ord.ID(), mustLocation(t))
		require.NoError(t, err)

		_, err = activator.Activate(ord, s, nil, testNow)

		assertNotEligible(t, err, "site survey is not approved")
	})

	t.Run("missing billing defers activation", func(t *testing.T) {
		ord := paidOrder(t)
		s := approvedSurvey(t, ord, true)

		_, err := activator.Activate(ord, s, nil, testNow)

		assertNotEligible(t, err, "additional billing has not been generated")
	})

	t.Run("unpaid billing defers activation", func(t *testing.T) {
		ord := paidOrder(t)
		s := approvedSurvey(t, ord, true)
		b, err := billing.NewAdditionalBilling(
			kernel.NewUUID(), s.ID(), s.OrderID(),
			billing.GenerateReference(testNow),
			s.CostItems(),
			false, billing.DefaultVATRate,
			testNow, billing.DefaultProposalValidity)
		require.NoError(t, err)
		require.NoError(t, b.SendForApproval(testNow))

		_, err = activator.Activate(ord, s, b, testNow)

		assertNotEligible(t, err, "additional billing is not paid")
	})

	t.Run("invalid order is rejected", func(t *testing.T) {
		s, err := survey.NewSiteSurvey(kernel.NewUUID(), kernel.NewUUID(), mustLocation(t))
		require.NoError(t, err)

		_, err = activator.Activate(nil, s, nil, testNow)

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
