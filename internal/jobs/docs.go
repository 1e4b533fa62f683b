// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the installation workflow.
//
// # Available Jobs
//
// 1. BillingExpirationJob - Periodically cancels additional billing proposals
// whose approval deadline has passed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireBillingsHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiration sweep schedule is configurable; the default "0 * * * * *"
// runs once a minute. A proposal that expired between sweeps is still refused
// at approval time by the aggregate itself, so the sweep only reconciles
// stored statuses, it is not a correctness requirement.
//
// # Error Handling
//
// - An empty sweep is the normal case and is not logged
// - Sweep failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
