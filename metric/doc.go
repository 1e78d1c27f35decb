// Package metric provides Prometheus-based metrics collection and an HTTP
// server for RingKit observability.
//
// The package offers a metrics registry managing component-specific metrics
// with duplicate detection, plus an HTTP server exposing metrics in
// Prometheus format for monitoring system integration.
//
// # Architecture
//
// The package follows a two-layer design:
//
//  1. Registry: extensible registration for component-specific metrics
//     (MetricsRegistrar interface, MetricsRegistry implementation)
//  2. HTTP Server: metrics endpoint with a health check (Server type)
//
// Components own their metrics (a ring buffer registers its counters, a
// WebSocket hub registers its gauges); the registry only tracks them under a
// component.metric key and guards against double registration.
//
// # Basic Usage
//
// Setting up metrics collection and the HTTP server:
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//
//	go func() {
//	    if err := server.Start(); err != nil {
//	        log.Printf("Metrics server error: %v", err)
//	    }
//	}()
//	defer server.Stop()
//
// The server exposes Prometheus-formatted metrics at
// http://localhost:9090/metrics and a health check at
// http://localhost:9090/health.
//
// # Component Metrics
//
// Components register custom metrics through the registry:
//
//	// Register a counter
//	adds := prometheus.NewCounter(prometheus.CounterOpts{
//	    Namespace: "ringkit",
//	    Subsystem: "ring",
//	    Name:      "adds_total",
//	    Help:      "Total number of items added",
//	})
//	err := registry.RegisterCounter("event-ring", "adds_total", adds)
//
//	// Register a gauge
//	size := prometheus.NewGauge(prometheus.GaugeOpts{
//	    Namespace: "ringkit",
//	    Subsystem: "ring",
//	    Name:      "size",
//	    Help:      "Current number of live elements",
//	})
//	err = registry.RegisterGauge("event-ring", "size", size)
//
//	// Register a histogram
//	writeDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
//	    Name:    "frame_write_duration_seconds",
//	    Help:    "Time spent writing frames to clients",
//	    Buckets: prometheus.DefBuckets,
//	})
//	err = registry.RegisterHistogram("ws-hub", "frame_write_duration_seconds", writeDuration)
//
// # MetricsRegistrar Interface
//
// Components accept the MetricsRegistrar interface rather than the concrete
// registry, enabling testing with mock registrars and loose coupling:
//
//	func NewHub(registry metric.MetricsRegistrar) (*Hub, error) {
//	    gauge := prometheus.NewGauge(prometheus.GaugeOpts{
//	        Name: "connected_clients",
//	        Help: "Number of connected observers",
//	    })
//	    if err := registry.RegisterGauge("ws-hub", "connected_clients", gauge); err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
//
// # Error Handling
//
// Registration methods return classified errors for:
//
//   - Duplicate registration under the same component.metric key (Invalid)
//   - Prometheus-level name conflicts (Invalid)
//   - Other Prometheus registration failures (Fatal)
//
// # Thread Safety
//
// All registry operations are thread-safe: registration uses mutex
// protection, metric recording is lock-free (Prometheus guarantee), and
// PrometheusRegistry() is safe for concurrent access.
//
// # Design Decisions
//
// Centralized registry over distributed collectors: ensures a consistent
// metric namespace, prevents duplication, and enables runtime discovery.
//
// Direct Prometheus client integration rather than an abstraction layer:
// leverages native features, avoids wrapper overhead, and stays compatible
// with the Prometheus ecosystem.
//
// Blocking Start(): the server blocks the calling goroutine like
// http.ListenAndServe; run it in a goroutine and call Stop() to shut down.
// A Stop()ed server returns nil from Start rather than surfacing
// http.ErrServerClosed.
package metric
