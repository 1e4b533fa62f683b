package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/survey"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixtureNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func fixtureLocation(t *testing.T) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(41.0082, 28.9784)
	require.NoError(t, err)
	return location
}

func fixtureUnpaidOrder(t *testing.T) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), fixtureLocation(t), fixtureNow)
	require.NoError(t, err)
	return ord
}

func fixturePaidOrder(t *testing.T) *order.Order {
	t.Helper()
	ord := fixtureUnpaidOrder(t)
	require.NoError(t, ord.ConfirmPayment())
	return ord
}

func fixtureCancelledOrder(t *testing.T) *order.Order {
	t.Helper()
	ord := fixturePaidOrder(t)
	require.NoError(t, ord.Cancel())
	return ord
}

func fixtureScheduledSurvey(t *testing.T, ord *order.Order) *survey.SiteSurvey {
	t.Helper()
	s, err := survey.NewSiteSurvey(kernel.NewUUID(), ord.ID(), ord.Location())
	require.NoError(t, err)
	return s
}

func fixtureInProgressSurvey(t *testing.T, ord *order.Order) *survey.SiteSurvey {
	t.Helper()
	s := fixtureScheduledSurvey(t, ord)
	require.NoError(t, s.Start(kernel.NewUUID()))
	return s
}

func fixtureCostItem(t *testing.T) *survey.AdditionalCost {
	t.Helper()
	item, err := survey.NewAdditionalCost(
		"WiFi extender", survey.CostTypeExtender, 2,
		decimal.RequireFromString("45.00"), true, "weak signal on upper floor")
	require.NoError(t, err)
	return item
}

func fixtureCompletedSurvey(t *testing.T, ord *order.Order, withEquipment bool) *survey.SiteSurvey {
	t.Helper()
	s := fixtureInProgressSurvey(t, ord)
	if withEquipment {
		require.NoError(t, s.Complete(true, "weak signal on upper floor", []*survey.AdditionalCost{fixtureCostItem(t)}))
	} else {
		require.NoError(t, s.Complete(false, "", nil))
	}
	return s
}

func fixtureApprovedSurvey(t *testing.T, ord *order.Order, withEquipment bool) *survey.SiteSurvey {
	t.Helper()
	s := fixtureCompletedSurvey(t, ord, withEquipment)
	require.NoError(t, s.Approve(kernel.NewUUID(), fixtureNow))
	return s
}

func fixturePendingBilling(t *testing.T, s *survey.SiteSurvey, validity time.Duration) *billing.AdditionalBilling {
	t.Helper()
	b, err := billing.NewAdditionalBilling(
		kernel.NewUUID(), s.ID(), s.OrderID(),
		billing.GenerateReference(fixtureNow),
		s.CostItems(),
		false, billing.DefaultVATRate,
		time.Now(), validity)
	require.NoError(t, err)
	require.NoError(t, b.SendForApproval(time.Now()))
	return b
}

func fixtureApprovedBilling(t *testing.T, s *survey.SiteSurvey) *billing.AdditionalBilling {
	t.Helper()
	b := fixturePendingBilling(t, s, billing.DefaultProposalValidity)
	require.NoError(t, b.Approve(kernel.NewUUID(), time.Now(), "go ahead"))
	return b
}

func fixturePendingInstallation(t *testing.T, ord *order.Order, s *survey.SiteSurvey) *installation.InstallationActivity {
	t.Helper()
	a, err := installation.NewInstallationActivity(kernel.NewUUID(), ord.ID(), s.ID(), nil, fixtureNow)
	require.NoError(t, err)
	return a
}
