package jobs

import (
	"context"
	"fmt"
)

// JobManager coordinates the background workers of the application: the
// order consumer and the stuck-order sweep. Provides a unified interface to
// start and stop both.
type JobManager struct {
	consumerWorker *OrderConsumerWorker
	sweepJob       *StuckOrderSweepJob
}

// NewJobManager creates a job manager over already-constructed jobs.
func NewJobManager(consumerWorker *OrderConsumerWorker, sweepJob *StuckOrderSweepJob) *JobManager {
	return &JobManager{
		consumerWorker: consumerWorker,
		sweepJob:       sweepJob,
	}
}

// StartAll starts the consumer worker and the sweep job.
// Returns an error if the sweep job fails to start.
func (jm *JobManager) StartAll(ctx context.Context) error {
	jm.consumerWorker.Start(ctx)

	if err := jm.sweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stuck order sweep job: %w", err)
	}

	return nil
}

// StopAll stops both jobs. The caller must close the work queue first so the
// consumer worker can drain and exit; StopAll then waits for it.
func (jm *JobManager) StopAll() {
	jm.sweepJob.Stop()
	jm.consumerWorker.Stop()
}
