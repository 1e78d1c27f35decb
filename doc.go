// Package ringkit provides an observable fixed-capacity ring buffer and the
// delivery machinery that carries its change notifications to observers.
//
// # Philosophy: Core Without I/O
//
// RingKit separates a collection from the ways its changes reach the world:
//
// Layer 1 - Buffer Core (no I/O, no goroutines):
//   - RingBuffer[T]: fixed-capacity FIFO window with overwrite-when-full
//   - Sink[T]: pluggable ordered storage behind the buffer
//   - Statistics: always-on atomic operation counters
//   - Prometheus metrics: opt-in, per-instance component labels
//
// Layer 2 - Notification Delivery (pluggable, concurrent):
//   - Notifier contract: property changes plus collection resets
//   - Queued: non-blocking async dispatch to a slow observer
//   - Broadcaster: channel fan-out to many subscribers
//   - natsnotify: JSON events on NATS subjects
//   - wsnotify: WebSocket hub pushing events to browsers
//
// The core never logs, never blocks on an observer, and never opens a
// socket. Everything that can fail for environmental reasons lives in the
// delivery layer, where failures are logged and counted instead of being
// pushed back into the mutating goroutine.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│         RingBuffer[T]               │  Add, Remove, Head, Tail,
//	│   (one exclusive lock per op)       │  At, Set, Clear, Items
//	└─────────────────────────────────────┘
//	           ↓ emits after unlock
//	┌─────────────────────────────────────┐
//	│        notify.Notifier              │  PropertyChanged("Count"...)
//	│  (Funcs, Multi, Queued, custom)     │  CollectionReset()
//	└─────────────────────────────────────┘
//	           ↓ fans out via
//	┌─────────────────────────────────────┐
//	│     Delivery implementations        │  Broadcaster channels,
//	│  (natsnotify, wsnotify, your own)   │  NATS subjects, WebSockets
//	└─────────────────────────────────────┘
//
// # Quick Start
//
// A buffer with a logging observer:
//
//	buf, err := ringbuffer.New[string](100,
//		ringbuffer.WithNotifier[string](notify.Funcs{
//			OnCollectionReset: func() { slog.Info("window changed") },
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	buf.Add("hello")
//
// # Delivery Patterns
//
// Fan-Out (one buffer, many observers):
//
// notify.Multi forwards synchronously to several notifiers; Broadcaster
// turns emissions into per-subscriber channels. Both preserve per-mutation
// ordering. Failure or slowness of one subscriber never blocks the buffer.
//
//	┌────────────┐
//	│ RingBuffer │
//	└─────┬──────┘
//	      │ notify.Multi
//	 ┌────┼──────────────┐
//	 ↓    ↓              ↓
//	stats wsnotify.Hub  natsnotify.Publisher
//	      (browsers)    (downstream services)
//
// Slow-Observer Isolation:
//
// Wrap any notifier in notify.NewQueued to decouple the mutating goroutine
// from delivery. The queue never blocks: under sustained overload it drops
// intermediate property changes while guaranteeing a trailing reset, which
// is lossless under the re-read contract (observers re-read state rather
// than replay increments).
//
// Live Views:
//
// wsnotify.Hub is an http.Handler. Mount it, point the buffer's notifier at
// it, and every connected browser learns about each mutation; a client that
// connects mid-stream first receives a synthetic reset so it re-reads the
// current window.
//
// # The Re-Read Contract
//
// Every mutation ends its notification sequence with a collection reset.
// Observers are expected to treat notifications as invalidation, not as a
// replayable event log: on reset, re-read whatever you display. This is why
// dropped intermediate notifications (Queued under overload, stalled
// WebSocket clients) are safe, and why notification payloads carry property
// names but never element values.
//
// # Packages
//
//   - ringbuffer: the core buffer, sink contract, statistics, config
//   - notify: notifier contract, event model, Queued, Broadcaster
//   - notify/natsnotify: NATS JSON publisher
//   - notify/wsnotify: WebSocket broadcast hub
//   - metric: Prometheus registry wrapper and metrics HTTP server
//   - errors: classified errors (Transient/Invalid/Fatal) and sentinels
//   - testutil: recording and mock collaborators for tests
//
// # Observability
//
// Buffers always track statistics (atomic counters, throughput, eviction
// rate) via Stats(). Prometheus export is opt-in per buffer through
// metric.MetricsRegistry, and metric.Server serves /metrics and /health for
// scraping. Delivery components expose their own counters (published,
// failed, frames sent, drops) in the same dual-tracking style.
//
// # Error Handling
//
// Hot-path failures return bare sentinels (errors.ErrEmptyBuffer,
// errors.ErrIndexOutOfRange) cheap enough for per-element flow control.
// Construction and lifecycle failures return classified wraps carrying
// component, operation, and a Transient/Invalid/Fatal class that callers
// test with errors.IsTransient and friends. errors.Is sees through every
// wrap.
package ringkit
