package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpirationSchedule runs the expiration sweep once a minute.
const DefaultExpirationSchedule = "0 * * * * *"

// BillingExpirationJob manages the scheduled expiration of additional billing
// proposals. Pending proposals past their approval deadline are cancelled so
// the backlog reflects reality; the aggregate itself already refuses a late
// approval, the sweep only reconciles stored statuses.
type BillingExpirationJob struct {
	handler  commands.ExpireBillingsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBillingExpirationJob creates a new job for expiring billing proposals.
// An empty schedule falls back to DefaultExpirationSchedule.
func NewBillingExpirationJob(
	handler commands.ExpireBillingsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BillingExpirationJob {
	if schedule == "" {
		schedule = DefaultExpirationSchedule
	}

	return &BillingExpirationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "billing_expiration_job"),
	}
}

// Start begins the billing expiration sweep on its configured schedule.
func (j *BillingExpirationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewExpireBillingsCommand()

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Billing expiration sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired billing proposals cancelled", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Billing expiration job started", "schedule", j.schedule)
	return nil
}

// Stop stops the billing expiration job.
func (j *BillingExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Billing expiration job stopped")
}
