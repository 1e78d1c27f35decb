package wsnotify

import "github.com/prometheus/client_golang/prometheus"

// MetricsRegistrar is the metric registration surface the hub needs.
// *metric.MetricsRegistry satisfies it.
type MetricsRegistrar interface {
	RegisterCounter(componentName, metricName string, counter prometheus.Counter) error
	RegisterGauge(componentName, metricName string, gauge prometheus.Gauge) error
	RegisterHistogram(componentName, metricName string, histogram prometheus.Histogram) error
}

// hubMetrics holds Prometheus metrics for the hub.
type hubMetrics struct {
	clientsConnected prometheus.Gauge
	connectionsTotal prometheus.Counter
	framesSentTotal  prometheus.Counter
	sendErrorsTotal  prometheus.Counter
	writeDuration    prometheus.Histogram
}

// newHubMetrics creates and registers hub metrics. A nil registrar returns
// nil metrics (nil input = nil feature pattern).
func newHubMetrics(registrar MetricsRegistrar) (*hubMetrics, error) {
	if registrar == nil {
		return nil, nil
	}

	m := &hubMetrics{
		clientsConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ringkit",
			Subsystem: "websocket",
			Name:      "clients_connected",
			Help:      "Number of currently connected clients",
		}),
		connectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ringkit",
			Subsystem: "websocket",
			Name:      "client_connections_total",
			Help:      "Total client connections (including disconnected)",
		}),
		framesSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ringkit",
			Subsystem: "websocket",
			Name:      "frames_sent_total",
			Help:      "Total notification frames sent to clients",
		}),
		sendErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ringkit",
			Subsystem: "websocket",
			Name:      "send_errors_total",
			Help:      "Total failed frame writes",
		}),
		writeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ringkit",
			Subsystem: "websocket",
			Name:      "write_duration_seconds",
			Help:      "Time to write one frame to one client",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}),
	}

	if err := registrar.RegisterGauge("websocket", "clients_connected", m.clientsConnected); err != nil {
		return nil, err
	}
	if err := registrar.RegisterCounter("websocket", "client_connections_total", m.connectionsTotal); err != nil {
		return nil, err
	}
	if err := registrar.RegisterCounter("websocket", "frames_sent_total", m.framesSentTotal); err != nil {
		return nil, err
	}
	if err := registrar.RegisterCounter("websocket", "send_errors_total", m.sendErrorsTotal); err != nil {
		return nil, err
	}
	if err := registrar.RegisterHistogram("websocket", "write_duration_seconds", m.writeDuration); err != nil {
		return nil, err
	}

	return m, nil
}
