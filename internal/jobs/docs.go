// Package jobs provides scheduled background tasks for the order
// management system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. QuoteExpirationJob - Runs hourly to expire lapsed quotes and send
// reminders for quotes entering the reminder window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, sweepLock, logger)
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
// The expiration sweep uses the cron expression "0 * * * *" and runs at
// the top of every hour. An hourly cadence keeps quote expirations accurate
// to within an hour of the stamped expiry without hammering the database.
//
// # Error Handling
//
// - A sweep cycle whose lock is held by another instance is skipped silently
// - Sweep failures are logged and retried on the next schedule
// - Failed job starts will stop any already running jobs
package jobs
