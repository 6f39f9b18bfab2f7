package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// MetricsReportJob periodically computes the assignment metrics report and
// logs it for operational visibility.
type MetricsReportJob struct {
	handler  queries.GetAssignmentMetricsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMetricsReportJob creates a new job logging the metrics report on the
// given cron schedule.
func NewMetricsReportJob(
	handler queries.GetAssignmentMetricsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *MetricsReportJob {
	return &MetricsReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "metrics_report_job"),
	}
}

// Start begins the metrics report job on its configured schedule.
func (j *MetricsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetAssignmentMetricsQuery()

		report, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Metrics report job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Assignment metrics report",
			"totalAssigned", report.TotalAssigned,
			"successRate", report.SuccessRate,
			"averageTime", report.AverageTime,
			"failureReasons", report.FailureReasons,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Metrics report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the metrics report job.
func (j *MetricsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Metrics report job stopped")
}
