package cmd

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/inventory"
	"fulfillment/internal/adapters/out/notifications"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/taxpolicy"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/application/workflow"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: handlers over a GORM
// unit-of-work factory, the workflow coordinator over the handlers, and the
// outer adapters over the coordinator.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	taxPolicy        ports.TaxPolicy
	inventoryService ports.InventoryService
	notifier         ports.Notifier
	proposalValidity time.Duration
	sweepSchedule    string
}

// NewCompositionRoot builds the application graph from configuration.
// Malformed optional settings fall back to their defaults with a warning.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:           logger,
		taxPolicy:        taxpolicy.NewConfigTaxPolicy(parseVATRate(configs, logger), parseExemptCustomers(configs, logger)),
		inventoryService: inventory.NewInMemoryInventoryService(),
		notifier:         notifications.NewSlogNotifier(logger),
		proposalValidity: parseProposalValidity(configs, logger),
		sweepSchedule:    configs.ExpirationSweepSchedule,
	}
}

func (c *CompositionRoot) CreateConfirmOrderPaymentCommandHandler() commands.ConfirmOrderPaymentCommandHandler {
	var f commands.OrderSurveyUoWFactory = FuncOrderSurveyUoWFactory(func() commands.OrderSurveyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderPaymentCommandHandler(f, c.inventoryService)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.inventoryService)
}

func (c *CompositionRoot) CreateStartSurveyCommandHandler() commands.StartSurveyCommandHandler {
	return commands.NewStartSurveyCommandHandler(c.surveyUoWFactory())
}

func (c *CompositionRoot) CreateCompleteSurveyCommandHandler() commands.CompleteSurveyCommandHandler {
	return commands.NewCompleteSurveyCommandHandler(c.surveyUoWFactory())
}

func (c *CompositionRoot) CreateApproveSurveyCommandHandler() commands.ApproveSurveyCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveSurveyCommandHandler(f, c.taxPolicy, c.proposalValidity)
}

func (c *CompositionRoot) CreateRejectSurveyCommandHandler() commands.RejectSurveyCommandHandler {
	return commands.NewRejectSurveyCommandHandler(c.surveyUoWFactory())
}

func (c *CompositionRoot) CreateReassignSurveyCommandHandler() commands.ReassignSurveyCommandHandler {
	return commands.NewReassignSurveyCommandHandler(c.surveyUoWFactory())
}

func (c *CompositionRoot) CreateApproveBillingCommandHandler() commands.ApproveBillingCommandHandler {
	var f commands.OrderBillingUoWFactory = FuncOrderBillingUoWFactory(func() commands.OrderBillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveBillingCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectBillingCommandHandler() commands.RejectBillingCommandHandler {
	return commands.NewRejectBillingCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateMarkBillingPaidCommandHandler() commands.MarkBillingPaidCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkBillingPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireBillingsCommandHandler() commands.ExpireBillingsCommandHandler {
	return commands.NewExpireBillingsCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateStartInstallationCommandHandler() commands.StartInstallationCommandHandler {
	return commands.NewStartInstallationCommandHandler(c.installationUoWFactory())
}

func (c *CompositionRoot) CreateCompleteInstallationCommandHandler() commands.CompleteInstallationCommandHandler {
	return commands.NewCompleteInstallationCommandHandler(c.installationUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingBillingsQueryHandler() queries.GetPendingBillingsQueryHandler {
	return queries.NewGetPendingBillingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderWorkflowQueryHandler() queries.GetOrderWorkflowQueryHandler {
	return queries.NewGetOrderWorkflowQueryHandler(c.gormDB)
}

// CreateCoordinator wires the workflow coordinator over the command handlers.
func (c *CompositionRoot) CreateCoordinator() *workflow.Coordinator {
	return workflow.NewCoordinator(
		c.CreateConfirmOrderPaymentCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateCompleteSurveyCommandHandler(),
		c.CreateApproveSurveyCommandHandler(),
		c.CreateRejectSurveyCommandHandler(),
		c.CreateApproveBillingCommandHandler(),
		c.CreateRejectBillingCommandHandler(),
		c.CreateMarkBillingPaidCommandHandler(),
		c.notifier,
		c.logger,
	)
}

// CreateServer wires the HTTP adapter.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCoordinator(),
		c.CreateStartSurveyCommandHandler(),
		c.CreateReassignSurveyCommandHandler(),
		c.CreateStartInstallationCommandHandler(),
		c.CreateCompleteInstallationCommandHandler(),
		c.CreateGetPendingBillingsQueryHandler(),
		c.CreateGetOrderWorkflowQueryHandler(),
	)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireBillingsCommandHandler(), c.sweepSchedule, c.logger)
}

func (c *CompositionRoot) surveyUoWFactory() commands.SurveyUoWFactory {
	return FuncSurveyUoWFactory(func() commands.SurveyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) installationUoWFactory() commands.InstallationUoWFactory {
	return FuncInstallationUoWFactory(func() commands.InstallationUoW {
		return c.uowFactory.Create()
	})
}

func parseVATRate(configs Config, logger *slog.Logger) decimal.Decimal {
	if configs.VATRate == "" {
		return decimal.Decimal{}
	}

	rate, err := decimal.NewFromString(configs.VATRate)
	if err != nil {
		logger.Warn("Invalid VAT_RATE, falling back to default", "value", configs.VATRate)
		return decimal.Decimal{}
	}

	return rate
}

func parseExemptCustomers(configs Config, logger *slog.Logger) []kernel.UUID {
	if configs.TaxExemptCustomerIDs == "" {
		return nil
	}

	raw := strings.Split(configs.TaxExemptCustomerIDs, ",")
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(strings.TrimSpace(s))
		if err != nil {
			logger.Warn("Skipping invalid customer id in TAX_EXEMPT_CUSTOMER_IDS", "value", s)
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

func parseProposalValidity(configs Config, logger *slog.Logger) time.Duration {
	if configs.ProposalValidityHours == "" {
		return 0
	}

	hours, err := strconv.Atoi(configs.ProposalValidityHours)
	if err != nil || hours <= 0 {
		logger.Warn("Invalid PROPOSAL_VALIDITY_HOURS, falling back to default",
			"value", configs.ProposalValidityHours)
		return 0
	}

	return time.Duration(hours) * time.Hour
}

type FuncSurveyUoWFactory func() commands.SurveyUoW

func (f FuncSurveyUoWFactory) Create() commands.SurveyUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncInstallationUoWFactory func() commands.InstallationUoW

func (f FuncInstallationUoWFactory) Create() commands.InstallationUoW {
	return f()
}

type FuncOrderBillingUoWFactory func() commands.OrderBillingUoW

func (f FuncOrderBillingUoWFactory) Create() commands.OrderBillingUoW {
	return f()
}

type FuncOrderSurveyUoWFactory func() commands.OrderSurveyUoW

func (f FuncOrderSurveyUoWFactory) Create() commands.OrderSurveyUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
