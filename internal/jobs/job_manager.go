package jobs

import (
	"fmt"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderBacklogJob *OrderBacklogJob
}

func NewJobManager(
	summaryHandler queries.GetOrderStatusSummaryQueryHandler,
	orderMetrics metrics.Orders,
	backlogSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderBacklogJob: NewOrderBacklogJob(summaryHandler, orderMetrics, backlogSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
}
