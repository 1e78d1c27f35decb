// Package ringbuffer provides a thread-safe fixed-capacity circular buffer
// with change notifications, built-in statistics tracking, and optional
// Prometheus metrics integration.
//
// # Overview
//
// The ringbuffer package implements an observable ordered collection with a
// fixed capacity. Elements are kept in arrival order (oldest first) and the
// buffer overwrites the oldest element when a new one arrives at capacity.
// Every mutation is reported to an optional notify.Notifier, which makes the
// buffer suitable as the backing model for live views, dashboards, and other
// observers that need to track a bounded window of recent items.
//
// # Quick Start
//
// Basic buffer creation:
//
//	buf, err := ringbuffer.New[int](1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Add data
//	buf.Add(42)
//
//	// Inspect the window
//	oldest, err := buf.Head()
//	newest, err := buf.Tail()
//
//	// Consume the oldest element
//	value, err := buf.Remove()
//
// With notifications and metrics:
//
//	buf, err := ringbuffer.New[*Event](5000,
//		ringbuffer.WithNotifier[*Event](notifier),
//		ringbuffer.WithMetrics[*Event](registry, "event_window"),
//	)
//
// From configuration:
//
//	cfg := ringbuffer.DefaultConfig()
//	cfg.Capacity = 256
//	buf, err := ringbuffer.NewFromConfig[string](cfg)
//
// # Change Notifications
//
// Mutations describe themselves through the notify.Notifier supplied with
// WithNotifier. Add, Remove, and Clear emit property changes for Count, Head,
// Tail, and Item[] in that order, followed by a collection reset event. Set
// emits only Item[] and the reset, since replacing an element in place leaves
// the endpoints and the count untouched. Read operations and failed
// operations emit nothing.
//
// Notifications are delivered after the buffer lock is released, so an
// observer may call back into the buffer without deadlocking. The same rule
// applies to the eviction callback: when Add overwrites the oldest element,
// the callback registered with WithEvictionCallback receives the evicted
// value on the adding goroutine, after the lock is released and before the
// notifications fire.
//
// # Storage Sinks
//
// Element storage is pluggable through the Sink interface. The default sink
// is a pre-allocated slice, which suits almost every use. WithSink installs a
// custom implementation, for example to mirror elements into an existing
// ordered collection owned by a UI layer. The buffer performs all index
// validation and locking itself, so a Sink only has to move elements around;
// see the interface documentation for the exact contract.
//
// # Design Decision: Compacted Storage
//
// The buffer keeps live elements contiguous in the sink, with the oldest at
// position 0 and the newest at position Len()-1. A classic ring keeps a
// wrapping head offset instead and avoids shifting on removal, but then the
// storage position of an element changes meaning depending on hidden state,
// and an observer watching Item[] cannot interpret an index without also
// knowing the offset.
//
// Compaction was chosen because observability is the point of this package:
//   - Item[0] is always the oldest element and Item[count-1] the newest
//   - At(i) and Set(i) use the same stable positions observers see
//   - A custom Sink can be bound directly to a positional view
//
// The price is an O(n) shift when the oldest element leaves (see Performance
// Characteristics below). For the moderate capacities this buffer targets,
// the memmove is cheap and the simpler observable contract wins.
//
// # Observability Architecture
//
// The package implements the same dual-tracking pattern as the rest of the
// module:
//
// Statistics (Always On):
//   - Tracks all operations using atomic counters
//   - Zero configuration required
//   - Available via buf.Stats()
//   - Provides computed values (throughput, eviction rate, utilization)
//   - No external dependencies
//
// Prometheus Metrics (Optional):
//   - Enabled via WithMetrics() option
//   - Exports counters and gauges for time-series monitoring
//   - Includes a component label for instance identification
//
// Statistics and metrics count independently. Statistics stay available in
// minimal deployments and in tests, while Prometheus gets the long-term
// series for dashboards and alerting. Reading counters back out of
// Prometheus to serve Stats() would tie basic introspection to the metrics
// stack and is roughly an order of magnitude slower than the atomic loads.
//
// # Thread Safety
//
// All operations are safe for concurrent use:
//   - Multiple goroutines may mutate and read concurrently
//   - Each operation holds the buffer mutex exactly once, with no nested
//     acquisition
//   - Statistics use atomic operations (lock-free)
//   - Callbacks and notifications run outside the lock
//
// # API Design Patterns
//
// Functional Options:
//
//	buf, _ := ringbuffer.New[T](capacity,
//		ringbuffer.WithNotifier[T](notifier),
//		ringbuffer.WithSink[T](sink),
//		ringbuffer.WithMetrics[T](registry, prefix),
//		ringbuffer.WithEvictionCallback[T](callback),
//	)
//
// Generic Types:
//
//	intBuf, _ := ringbuffer.New[int](100)
//	byteBuf, _ := ringbuffer.New[[]byte](1000)
//	structBuf, _ := ringbuffer.New[*Sample](500)
//
// # Performance Characteristics
//
// Operations:
//   - Add below capacity: O(1)
//   - Add at capacity: O(n), the surviving elements shift down one slot
//   - Remove: O(n), same shift
//   - Head, Tail, At, Set: O(1)
//   - Clear: O(n) to release element references
//
// Memory:
//   - Pre-allocated backing slice with the default sink
//   - No allocations during steady-state operation
//   - Statistics overhead: ~200 bytes
//   - Metrics overhead: ~1KB when enabled
//
// # Common Use Cases
//
// Recent-activity feed backing a live view:
//
//	feed, _ := ringbuffer.New[*Activity](200,
//		ringbuffer.WithNotifier[*Activity](hub),
//	)
//
// Sliding window of measurements:
//
//	window, _ := ringbuffer.New[float64](300,
//		ringbuffer.WithMetrics[float64](registry, "latency_window"),
//	)
//
// Bounded audit trail with spillover logging:
//
//	trail, _ := ringbuffer.New[*AuditEntry](1000,
//		ringbuffer.WithEvictionCallback[*AuditEntry](func(e *AuditEntry) {
//			log.Printf("audit entry aged out: %s", e.ID)
//		}),
//	)
//
// # Testing
//
// The package includes comprehensive tests with race detection:
//
//	go test -race ./ringbuffer
//
// Benchmarks are available to validate performance:
//
//	go test -bench=. ./ringbuffer
package ringbuffer
