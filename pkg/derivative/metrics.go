package derivative

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "imfilter"

type Metrics struct {
	hits            *prometheus.CounterVec
	misses          *prometheus.CounterVec
	shares          *prometheus.CounterVec
	failures        *prometheus.CounterVec
	computeDuration *prometheus.HistogramVec
}

// NewMetrics creates the derivative service collectors and registers them
// on registerer.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		hits:     newCounterVec("cache_hit_total", "Derivatives served from cache."),
		misses:   newCounterVec("cache_miss_total", "Derivatives missing in cache on request."),
		shares:   newCounterVec("cache_share_total", "Requests served by a computation started by another request."),
		failures: newCounterVec("failure_total", "Failed derivative requests."),
		computeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "derivative",
			Name:      "compute_duration_seconds",
			Help:      "Time spent loading, filtering and storing a derivative.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"filter"}),
	}

	collectors := []prometheus.Collector{metrics.hits, metrics.misses, metrics.shares, metrics.failures, metrics.computeDuration}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return metrics, nil
}

func newCounterVec(name, help string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "derivative",
		Name:      name,
		Help:      help,
	}, []string{"filter"})
}

func (m *Metrics) hit(filter string) {
	m.hits.WithLabelValues(filter).Inc()
}

func (m *Metrics) miss(filter string) {
	m.misses.WithLabelValues(filter).Inc()
}

func (m *Metrics) share(filter string) {
	m.shares.WithLabelValues(filter).Inc()
}

func (m *Metrics) failure(filter string) {
	m.failures.WithLabelValues(filter).Inc()
}

func (m *Metrics) observeCompute(filter string, started time.Time) {
	m.computeDuration.WithLabelValues(filter).Observe(time.Since(started).Seconds())
}
