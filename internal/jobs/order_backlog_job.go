package jobs

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the report once a minute.
const DefaultBacklogSchedule = "0 * * * * *"

// OrderBacklogJob periodically reports how many orders are in each status.
type OrderBacklogJob struct {
	handler  queries.GetOrderStatusSummaryQueryHandler
	metrics  metrics.Orders
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderBacklogJob(
	handler queries.GetOrderStatusSummaryQueryHandler,
	orderMetrics metrics.Orders,
	schedule string,
	logger *slog.Logger,
) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		handler:  handler,
		metrics:  orderMetrics,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Start schedules the report. It fails on an invalid schedule.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderBacklogJob) Run(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrderStatusSummaryQuery())
	if err != nil {
		return err
	}

	attrs := make([]any, 0, 2*len(summary.Counts)+4)
	for _, c := range summary.Counts {
		j.metrics.SetStatusCount(c.Status, c.Count)
		attrs = append(attrs, c.Status, c.Count)
	}
	j.metrics.SetBacklog(summary.Backlog())
	attrs = append(attrs, "total", summary.Total, "backlog", summary.Backlog())

	j.logger.InfoContext(ctx, "Order backlog", attrs...)
	return nil
}

// Stop waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
