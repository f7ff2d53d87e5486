package syncer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Skryptex/SKX-EDIT/metrics"
)

const (
	namespace = "syncer"
)

var (
	verificationProgress = metrics.NewGauge(
		"verification_progress",
		namespace,
		"estimated fraction of verification work done at the chain tip",
		[]string{},
	).WithLabelValues()

	tipHeight = metrics.NewGauge(
		"tip_height",
		namespace,
		"height of the chain tip",
		[]string{},
	).WithLabelValues()

	totalBlocksEstimate = metrics.NewGauge(
		"total_blocks_estimate",
		namespace,
		"height of the highest checkpoint",
		[]string{},
	).WithLabelValues()

	reportDuration = metrics.NewHistogramWithBuckets(
		"report_duration_seconds",
		namespace,
		"time spent computing a progress report",
		[]string{},
		prometheus.ExponentialBuckets(0.00001, 4, 10),
	).WithLabelValues()

	numReports = metrics.NewCounter(
		"reports",
		namespace,
		"number of progress reports",
		[]string{"outcome"},
	)
	reportOK    = numReports.WithLabelValues("ok")
	reportNoTip = numReports.WithLabelValues("no_tip")
)
