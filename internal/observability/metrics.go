package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	Comparisons = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbportal_comparisons_total",
			Help: "Total document comparisons",
		},
		[]string{"result"},
	)

	ComparisonLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kbportal_comparison_latency_seconds",
			Help:    "Comparison latency including both content fetches",
			Buckets: prometheus.DefBuckets,
		},
	)

	ContentFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbportal_content_fetches_total",
			Help: "Total content fetches",
		},
		[]string{"result"},
	)

	AICalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbportal_ai_calls_total",
			Help: "Total answer provider calls",
		},
		[]string{"provider"},
	)

	AIErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbportal_ai_errors_total",
			Help: "Total answer provider errors",
		},
		[]string{"provider"},
	)

	AILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kbportal_ai_latency_seconds",
			Help:    "Answer provider latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	ChatMessages = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kbportal_chat_messages_total",
			Help: "Total chat messages answered",
		},
	)

	FeedbackEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kbportal_feedback_total",
			Help: "Feedback events by outcome",
		},
		[]string{"outcome"},
	)

	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kbportal_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func InitMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(
			Comparisons,
			ComparisonLatency,
			ContentFetches,
			AICalls,
			AIErrors,
			AILatency,
			ChatMessages,
			FeedbackEvents,
			RateLimited,
		)
	})
}
