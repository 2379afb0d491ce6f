package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	expiredOrdersJob *ExpiredOrdersJob
}

// NewJobManager creates the jobs. An empty expiredOrdersSchedule leaves the
// expired orders job out.
func NewJobManager(
	expiredOrdersHandler ExpiredOrdersHandler,
	expiredOrdersSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if expiredOrdersSchedule != "" {
		jm.expiredOrdersJob = NewExpiredOrdersJob(expiredOrdersHandler, expiredOrdersSchedule, logger)
	}
	return jm
}

// StartAll starts all configured jobs.
func (jm *JobManager) StartAll() error {
	if jm.expiredOrdersJob == nil {
		return nil
	}
	if err := jm.expiredOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start expired orders job: %w", err)
	}
	return nil
}

// StopAll stops all running jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.expiredOrdersJob != nil {
		jm.expiredOrdersJob.Stop()
	}
}
