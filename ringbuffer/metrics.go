package ringbuffer

import (
	"github.com/c360/ringkit/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// ringMetrics holds Prometheus metrics for buffer operations.
type ringMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	adds      prometheus.Counter
	removes   prometheus.Counter
	evictions prometheus.Counter
	sets      prometheus.Counter
	clears    prometheus.Counter

	// Gauge metrics - updated on operations
	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newRingMetrics creates and registers buffer metrics with the provided registry.
func newRingMetrics(registry *metric.MetricsRegistry, prefix string) (*ringMetrics, error) {
	m := &ringMetrics{
		adds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "adds_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of add operations",
		}),
		removes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "removes_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of remove operations",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "evictions_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of elements overwritten by full-buffer adds",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "sets_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of in-place replacements",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "clears_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of clear operations",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of elements in the buffer",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Buffer fill level as a fraction (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "ring_adds", m.adds); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_removes", m.removes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_evictions", m.evictions); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_sets", m.sets); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_clears", m.clears); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordAdd increments the add counter and updates size/utilization.
func (m *ringMetrics) recordAdd(size, capacity int) {
	m.adds.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordRemove increments the remove counter and updates size/utilization.
func (m *ringMetrics) recordRemove(size, capacity int) {
	m.removes.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordEviction increments the eviction counter.
func (m *ringMetrics) recordEviction() {
	m.evictions.Inc()
}

// recordSet increments the set counter.
func (m *ringMetrics) recordSet() {
	m.sets.Inc()
}

// recordClear increments the clear counter and zeroes size/utilization.
func (m *ringMetrics) recordClear() {
	m.clears.Inc()
	m.size.Set(0)
	m.utilization.Set(0)
}
