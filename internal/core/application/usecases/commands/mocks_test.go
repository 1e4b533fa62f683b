package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/survey"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockSurveyRepository struct{ mock.Mock }

func (m *MockSurveyRepository) Add(ctx context.Context, s *survey.SiteSurvey) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSurveyRepository) Update(ctx context.Context, s *survey.SiteSurvey) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSurveyRepository) Get(ctx context.Context, id kernel.UUID) (*survey.SiteSurvey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*survey.SiteSurvey), args.Error(1)
}
func (m *MockSurveyRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*survey.SiteSurvey, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*survey.SiteSurvey), args.Error(1)
}

type MockBillingRepository struct{ mock.Mock }

func (m *MockBillingRepository) Add(ctx context.Context, b *billing.AdditionalBilling) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBillingRepository) Update(ctx context.Context, b *billing.AdditionalBilling) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBillingRepository) Get(ctx context.Context, id kernel.UUID) (*billing.AdditionalBilling, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.AdditionalBilling), args.Error(1)
}
func (m *MockBillingRepository) GetBySurveyID(ctx context.Context, surveyID kernel.UUID) (*billing.AdditionalBilling, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.AdditionalBilling), args.Error(1)
}
func (m *MockBillingRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*billing.AdditionalBilling, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.AdditionalBilling), args.Error(1)
}
func (m *MockBillingRepository) GetAllPendingExpiredBefore(ctx context.Context, deadline time.Time) ([]*billing.AdditionalBilling, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.AdditionalBilling), args.Error(1)
}

type MockInstallationRepository struct{ mock.Mock }

func (m *MockInstallationRepository) Add(ctx context.Context, a *installation.InstallationActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockInstallationRepository) Update(ctx context.Context, a *installation.InstallationActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockInstallationRepository) Get(ctx context.Context, id kernel.UUID) (*installation.InstallationActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*installation.InstallationActivity), args.Error(1)
}
func (m *MockInstallationRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*installation.InstallationActivity, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*installation.InstallationActivity), args.Error(1)
}

// MockUoW implements every narrow unit-of-work interface used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) SurveyRepository() ports.SurveyRepository {
	args := m.Called()
	return args.Get(0).(ports.SurveyRepository)
}
func (m *MockUoW) BillingRepository() ports.BillingRepository {
	args := m.Called()
	return args.Get(0).(ports.BillingRepository)
}
func (m *MockUoW) InstallationRepository() ports.InstallationRepository {
	args := m.Called()
	return args.Get(0).(ports.InstallationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockSurveyUoWFactory struct{ mock.Mock }

func (m *MockSurveyUoWFactory) Create() commands.SurveyUoW {
	args := m.Called()
	return args.Get(0).(commands.SurveyUoW)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

type MockOrderBillingUoWFactory struct{ mock.Mock }

func (m *MockOrderBillingUoWFactory) Create() commands.OrderBillingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderBillingUoW)
}

type MockInstallationUoWFactory struct{ mock.Mock }

func (m *MockInstallationUoWFactory) Create() commands.InstallationUoW {
	args := m.Called()
	return args.Get(0).(commands.InstallationUoW)
}

type MockOrderSurveyUoWFactory struct{ mock.Mock }

func (m *MockOrderSurveyUoWFactory) Create() commands.OrderSurveyUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderSurveyUoW)
}

type MockTaxPolicy struct{ mock.Mock }

func (m *MockTaxPolicy) VATRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockTaxPolicy) IsExempt(ctx context.Context, customerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

type MockInventoryService struct{ mock.Mock }

func (m *MockInventoryService) Reserve(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockInventoryService) Release(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
