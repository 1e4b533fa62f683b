package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureExpiredBilling(t *testing.T, orderID kernel.UUID) *billing.AdditionalBilling {
	t.Helper()
	sentAt := time.Now().Add(-8 * 24 * time.Hour)
	b, err := billing.RestoreAdditionalBilling(
		kernel.NewUUID(), kernel.NewUUID(), orderID, "ADD250301XY99",
		decimal.RequireFromString("90.00"),
		decimal.RequireFromString("16.20"),
		decimal.RequireFromString("106.20"),
		false, billing.StatusPendingApproval,
		sentAt.Add(billing.DefaultProposalValidity),
		&sentAt, nil, nil, nil, nil, nil, "")
	require.NoError(t, err)
	return b
}

func TestNewApproveBillingCommand(t *testing.T) {
	id := kernel.NewUUID()
	customer := kernel.NewUUID()
	cmd, err := commands.NewApproveBillingCommand(id, customer, "go ahead")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.BillingID())
	assert.Equal(t, customer, cmd.Actor())
	assert.Equal(t, "go ahead", cmd.Notes())

	_, err = commands.NewApproveBillingCommand(kernel.UUID{}, customer, "")
	require.Error(t, err)

	_, err = commands.NewApproveBillingCommand(id, kernel.UUID{}, "")
	require.Error(t, err)
}

func TestApproveBillingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := fixturePaidOrder(t)
	siteSurvey := fixtureApprovedSurvey(t, ord, true)
	proposal := fixturePendingBilling(t, siteSurvey, billing.DefaultProposalValidity)
	cmd, _ := commands.NewApproveBillingCommand(proposal.ID(), ord.CustomerID(), "go ahead")

	billingRepo := new(MockBillingRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("Get", mock.Anything, proposal.ID()).Return(proposal, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, proposal.OrderID()).Return(ord, nil).Once(),
		billingRepo.On("Update", mock.Anything, proposal).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveBillingCommandHandler(factory)
	returned, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, proposal, returned)
	assert.Equal(t, billing.StatusApproved, proposal.Status())
	assert.Equal(t, "go ahead", proposal.CustomerNotes())
	require.NotNil(t, proposal.RespondedBy())
	assert.True(t, proposal.RespondedBy().IsEqual(ord.CustomerID()))
	billingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveBillingCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	ord := fixturePaidOrder(t)
	siteSurvey := fixtureApprovedSurvey(t, ord, true)
	proposal := fixturePendingBilling(t, siteSurvey, billing.DefaultProposalValidity)
	stranger := kernel.NewUUID()
	cmd, _ := commands.NewApproveBillingCommand(proposal.ID(), stranger, "go ahead")

	billingRepo := new(MockBillingRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("Get", mock.Anything, proposal.ID()).Return(proposal, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, proposal.OrderID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveBillingCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotEligible)
	assert.Equal(t, billing.StatusPendingApproval, proposal.Status())
	assert.Nil(t, proposal.RespondedBy())
	billingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestApproveBillingCommandHandler_Handle_ExpiredProposal(t *testing.T) {
	ctx := t.Context()
	ord := fixturePaidOrder(t)
	proposal := fixtureExpiredBilling(t, ord.ID())
	cmd, _ := commands.NewApproveBillingCommand(proposal.ID(), ord.CustomerID(), "too late")

	billingRepo := new(MockBillingRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("Get", mock.Anything, proposal.ID()).Return(proposal, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveBillingCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrExpiredProposal)
	assert.Equal(t, billing.StatusPendingApproval, proposal.Status())
	billingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestApproveBillingCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	billingID := kernel.NewUUID()
	cmd, _ := commands.NewApproveBillingCommand(billingID, kernel.NewUUID(), "")

	billingRepo := new(MockBillingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("Get", mock.Anything, billingID).
			Return(nil, errs.NewObjectNotFoundError("billing", billingID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveBillingCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestRejectBillingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := fixturePaidOrder(t)
	siteSurvey := fixtureApprovedSurvey(t, ord, true)
	proposal := fixturePendingBilling(t, siteSurvey, billing.DefaultProposalValidity)
	cmd, _ := commands.NewRejectBillingCommand(proposal.ID(), ord.CustomerID(), "too expensive")

	billingRepo := new(MockBillingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("Get", mock.Anything, proposal.ID()).Return(proposal, nil).Once(),
		billingRepo.On("Update", mock.Anything, proposal).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectBillingCommandHandler(factory)
	returned, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, proposal, returned)
	assert.Equal(t, billing.StatusRejected, proposal.Status())
	assert.Equal(t, "too expensive", proposal.CustomerNotes())
	require.NotNil(t, proposal.RespondedBy())
	assert.True(t, proposal.RespondedBy().IsEqual(ord.CustomerID()))
	uow.AssertExpectations(t)
}

func TestRejectBillingCommandHandler_Handle_AllowedPastDeadline(t *testing.T) {
	ctx := t.Context()
	proposal := fixtureExpiredBilling(t, kernel.NewUUID())
	cmd, _ := commands.NewRejectBillingCommand(proposal.ID(), kernel.NewUUID(), "no longer needed")

	billingRepo := new(MockBillingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillingRepository").Return(billingRepo).Once(),
		billingRepo.On("Get", mock.Anything, proposal.ID()).Return(proposal, nil).Once(),
		billingRepo.On("Update", mock.Anything, proposal).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectBillingCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, billing.StatusRejected, proposal.Status())
	uow.AssertExpectations(t)
}
