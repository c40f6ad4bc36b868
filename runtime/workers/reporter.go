package workers

import (
	"context"
	"log/slog"
	"time"

	"votekick-lab/observability"
)

// MetricsReporterWorker periodically logs a snapshot of the poll counters.
type MetricsReporterWorker struct {
	metrics  *observability.PollMetrics
	interval time.Duration
	log      *slog.Logger
}

func NewMetricsReporterWorker(metrics *observability.PollMetrics,
	interval time.Duration, log *slog.Logger) *MetricsReporterWorker {
	return &MetricsReporterWorker{metrics: metrics, interval: interval, log: log}
}

func (w *MetricsReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report()
			return ctx.Err()
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *MetricsReporterWorker) report() {
	snap := w.metrics.Snapshot()
	w.log.Info("Poll metrics",
		"started", snap.Started,
		"passed", snap.Passed,
		"failed", snap.Failed,
		"aborted", snap.Aborted,
		"action_failures", snap.ActionFailures,
		"uptime_s", snap.UptimeSeconds)
}
