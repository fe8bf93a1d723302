package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	reportsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pacp_coder",
		Subsystem: "report",
		Name:      "builds_total",
		Help:      "Total number of reports built.",
	})

	groupsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pacp_coder",
		Subsystem: "report",
		Name:      "groups_processed_total",
		Help:      "Total number of inspection groups consolidated.",
	})

	codesEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pacp_coder",
		Subsystem: "report",
		Name:      "codes_emitted_total",
		Help:      "Total number of consolidated code entries emitted.",
	})

	buildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pacp_coder",
		Subsystem: "report",
		Name:      "build_duration_seconds",
		Help:      "Report build duration.",
		Buckets:   prometheus.DefBuckets,
	})
)
