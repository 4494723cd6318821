package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	QuotaRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhub_quota_rejections_total",
			Help: "Resource creations rejected by plan quota",
		},
		[]string{"resource"},
	)

	SubscriptionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhub_subscriptions_created_total",
			Help: "Subscriptions created, by subscription type",
		},
		[]string{"type"},
	)

	SubscriptionsExpiredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhub_subscriptions_expired_total",
			Help: "Subscriptions flipped to expired by the sweeper",
		},
		[]string{"type"},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymhub_payments_recorded_total",
			Help: "Payment ledger entries recorded",
		},
		[]string{"subscription_type"},
	)

	SweeperRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymhub_sweeper_runs_total",
			Help: "Total expiry sweeper runs",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordQuotaRejection(resource string) {
	QuotaRejectionsTotal.WithLabelValues(resource).Inc()
}

func RecordSubscriptionCreated(subType string) {
	SubscriptionsCreatedTotal.WithLabelValues(subType).Inc()
}

func RecordSweep(subType string, expired int64) {
	SubscriptionsExpiredTotal.WithLabelValues(subType).Add(float64(expired))
}

func RecordPayment(subType string) {
	PaymentsRecordedTotal.WithLabelValues(subType).Inc()
}
