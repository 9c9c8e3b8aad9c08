package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type FetchMetricsCollector struct {
	Fetches  *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

var (
	globalCollector *FetchMetricsCollector
	collectorOnce   sync.Once
)

func getCollector() *FetchMetricsCollector {
	collectorOnce.Do(func() {
		globalCollector = &FetchMetricsCollector{
			Fetches: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_fetch_total",
					Help: "The total number of weather fetch attempts",
				},
				[]string{"provider"},
			),
			Failures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_fetch_failures_total",
					Help: "The total number of failed weather fetches",
				},
				[]string{"provider"},
			),
			Duration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weather_fetch_duration_seconds",
					Help:    "Weather fetch duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"provider"},
			),
		}
	})
	return globalCollector
}

// FetchMetrics tracks fetch outcomes for one provider, mirroring its counts
// into the shared Prometheus collector.
type FetchMetrics struct {
	provider  string
	fetches   int64
	failures  int64
	collector *FetchMetricsCollector
	mu        sync.RWMutex
}

func NewFetchMetrics(provider string) *FetchMetrics {
	return &FetchMetrics{
		provider:  provider,
		collector: getCollector(),
	}
}

func (m *FetchMetrics) RecordSuccess(durationSeconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fetches++
	m.collector.Fetches.WithLabelValues(m.provider).Inc()
	m.collector.Duration.WithLabelValues(m.provider).Observe(durationSeconds)
}

func (m *FetchMetrics) RecordFailure(durationSeconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fetches++
	m.failures++
	m.collector.Fetches.WithLabelValues(m.provider).Inc()
	m.collector.Failures.WithLabelValues(m.provider).Inc()
	m.collector.Duration.WithLabelValues(m.provider).Observe(durationSeconds)
}

func (m *FetchMetrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var failureRatio float64
	if m.fetches > 0 {
		failureRatio = float64(m.failures) / float64(m.fetches)
	}

	return map[string]interface{}{
		"provider":      m.provider,
		"fetches":       m.fetches,
		"failures":      m.failures,
		"failure_ratio": failureRatio,
	}
}
