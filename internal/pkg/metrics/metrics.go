package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OutcomeSuccess labels a connect that produced a ConnectionInfo.
const OutcomeSuccess = "success"

var (
	registerOnce sync.Once

	connectAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pixelity",
			Subsystem: "wallet",
			Name:      "connect_total",
			Help:      "Wallet connect attempts by outcome.",
		},
		[]string{"outcome"},
	)
	connectDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pixelity",
			Subsystem: "wallet",
			Name:      "connect_duration_seconds",
			Help:      "Duration of the provider exchange, including time spent waiting for the user.",
			Buckets:   []float64{0.05, 0.25, 1, 5, 15, 60, 300},
		},
		[]string{"outcome"},
	)
	providerCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pixelity",
			Subsystem: "provider",
			Name:      "calls_total",
			Help:      "Provider calls by step and result.",
		},
		[]string{"step", "success"},
	)
	openViews = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pixelity",
			Subsystem: "views",
			Name:      "open",
			Help:      "Page views currently held in memory.",
		},
	)
)

// MustRegisterMetrics registers the collectors with the default registry. Safe to call repeatedly.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(connectAttempts, connectDuration, providerCalls, openViews)
	})
}

// RecordConnect records one finished provider exchange. outcome is OutcomeSuccess or an error kind.
func RecordConnect(outcome string, duration time.Duration) {
	connectAttempts.WithLabelValues(outcome).Inc()
	connectDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordProviderCall records a single provider call.
func RecordProviderCall(step string, success bool) {
	label := "false"
	if success {
		label = "true"
	}
	providerCalls.WithLabelValues(step, label).Inc()
}

// SetOpenViews reports the number of live page views.
func SetOpenViews(n int) {
	openViews.Set(float64(n))
}
