package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"sales/internal/core/application/usecases/commands"
)

// ExpiredOrdersHandler is satisfied by *commands.ProcessExpiredOrdersCommandHandler.
type ExpiredOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ProcessExpiredOrdersCommand) (int, error)
}

// ExpiredOrdersJob periodically processes orders that can no longer be
// cancelled.
type ExpiredOrdersJob struct {
	handler  ExpiredOrdersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewExpiredOrdersJob(handler ExpiredOrdersHandler, schedule string, logger *slog.Logger) *ExpiredOrdersJob {
	return &ExpiredOrdersJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "expired_orders_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *ExpiredOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expired orders job started", "schedule", j.schedule)
	return nil
}

// Run performs a single pass. Errors are logged, never returned.
func (j *ExpiredOrdersJob) Run(ctx context.Context) {
	processed, err := j.handler.Handle(ctx, commands.NewProcessExpiredOrdersCommand())
	switch {
	case errors.Is(err, commands.ErrEventsNotPublished):
		j.logger.WarnContext(ctx, "Expired orders processed but events were not published",
			"processed", processed, "error", err)
	case err != nil:
		j.logger.ErrorContext(ctx, "Expired orders job failed", "error", err)
	case processed > 0:
		j.logger.InfoContext(ctx, "Expired orders processed", "processed", processed)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *ExpiredOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Expired orders job stopped")
}
