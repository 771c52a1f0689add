package jobs

import (
	"context"
	"log/slog"
	"time"

	"inventory/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StuckOrderSweepJob periodically re-enqueues orders sitting in Processing
// longer than maxAge. Their queue entries were lost, typically across a
// restart; re-enqueueing is safe because completion is guarded by the
// store's status check.
type StuckOrderSweepJob struct {
	handler  commands.RequeueStuckOrdersCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStuckOrderSweepJob creates the sweep job. schedule is a six-field cron
// expression; maxAge is how long an order may stay in Processing before it
// counts as stuck and must comfortably exceed the worker's processing delay.
func NewStuckOrderSweepJob(
	handler commands.RequeueStuckOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StuckOrderSweepJob {
	return &StuckOrderSweepJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stuck_order_sweep_job"),
	}
}

// Start begins the periodic sweep.
func (j *StuckOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRequeueStuckOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Building sweep command failed", "error", cmdErr)
			return
		}

		n, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stuck order sweep failed", "error", handleErr)
			return
		}

		if n > 0 {
			j.logger.WarnContext(ctx, "Stuck order sweep re-enqueued orders", "count", n)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck order sweep job started",
		"schedule", j.schedule, "maxAge", j.maxAge)
	return nil
}

// Stop stops the sweep job.
func (j *StuckOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck order sweep job stopped")
}
