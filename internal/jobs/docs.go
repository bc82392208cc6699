// Package jobs provides scheduled background tasks for the order status service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs every minute to flag orders in transit past
// their expected delivery time with a LATE_DELIVERY exception
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(flagOverdueHandler, logger)
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
// The watchdog uses the cron expression "0 * * * * *", firing at the top of
// every minute. Expected delivery times carry minute precision, so a tighter
// schedule would only rescan the same orders.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick; the job never stops itself
// - An order already carrying an unresolved late delivery exception is not flagged again
// - Failed job starts will stop any already running jobs
package jobs
