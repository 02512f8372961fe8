// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. OutboxDispatchJob - Runs every second to relay pending outbox events to the message transport
// 2. RetentionJob - Runs every hour to purge packaging requests and deliveries that finished before the retention cutoff
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, purgeHandler, batchSize, retention, logger)
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
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second, keeping the lag between a committed status change and its
// published event small. The retention job runs at the top of every hour;
// finished records only need to disappear eventually.
//
// # Error Handling
//
// - The dispatch job logs transport rejections with their counts; a pass that moves no events stays silent
// - The retention job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
