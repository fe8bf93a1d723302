package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pacp_coder/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var storedReports = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "pacp_coder",
	Subsystem: "store",
	Name:      "reports",
	Help:      "Number of reports currently held for download.",
})

type ReportCounter interface {
	Count() int
}

// StatsReporter periodically publishes the report-store size as a gauge.
type StatsReporter struct {
	store    ReportCounter
	interval time.Duration
}

func NewStatsReporter(store ReportCounter, interval time.Duration) *StatsReporter {
	return &StatsReporter{
		store:    store,
		interval: interval,
	}
}

func (w *StatsReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			count := w.store.Count()
			storedReports.Set(float64(count))
			logger(ctx).Debug("report store stats", slog.Int("stored", count))
		}
	}
}
