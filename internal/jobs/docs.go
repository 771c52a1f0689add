// Package jobs provides the background workers of the fulfillment pipeline.
//
// # Available Jobs
//
// 1. OrderConsumerWorker - the single consumer of the work queue; holds each
// accepted order for the configured processing delay and marks it Processed
// 2. StuckOrderSweepJob - a cron job (github.com/robfig/cron/v3) that
// re-enqueues orders stranded in Processing, typically after a restart
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(consumerWorker, sweepJob)
//
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// On shutdown: close the work queue first, then stop the jobs.
//	queue.Close()
//	jobManager.StopAll()
//
// # Error Handling
//
//   - The consumer worker treats "order not found" and "order no longer
//     Processing" as expected outcomes of cancellation races and logs them
//     at info level
//   - The sweep job logs failures and retries on its next scheduled run
package jobs
