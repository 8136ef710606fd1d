// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)

// Pricing domain series.
var (
	PricingQuotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_quotes_total",
			Help: "Assessment quotes resolved, by tier",
		},
		[]string{"tier"},
	)

	CheckoutTotalMXN = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pricing_checkout_total_mxn",
			Help:    "Computed marketplace checkout totals in MXN, by purchase type",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		},
		[]string{"purchase_type"},
	)

	PricingCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_cache_lookups_total",
			Help: "Module pricing cache lookups, by result",
		},
		[]string{"result"},
	)

	RevenueDistributedMXN = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revenue_distributed_mxn_total",
			Help: "Revenue credited per share of the split",
		},
		[]string{"share"},
	)

	ProposalsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proposals_sent_total",
			Help: "Proposal emails, by delivery status",
		},
		[]string{"status"},
	)
)
