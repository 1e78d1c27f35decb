package ringbuffer

import (
	"github.com/c360/ringkit/metric"
	"github.com/c360/ringkit/notify"
)

// Option configures buffer behavior using the functional options pattern.
type Option[T any] func(*ringOptions[T])

// EvictionCallback is called with each element a full-buffer Add overwrites.
// It runs on the adding goroutine after the buffer lock is released.
type EvictionCallback[T any] func(item T)

// ringOptions holds internal configuration for buffer instances.
// Stats are ALWAYS collected - they are not optional.
type ringOptions[T any] struct {
	notifier         notify.Notifier
	sink             Sink[T]
	evictionCallback EvictionCallback[T]

	// metricsReg is optional - if provided together with a prefix, buffer
	// stats are also exposed as Prometheus metrics
	metricsReg    *metric.MetricsRegistry
	metricsPrefix string
}

// WithNotifier sets the change notifier that receives the emission sequence
// after every mutation. A nil notifier disables emission entirely.
func WithNotifier[T any](n notify.Notifier) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.notifier = n
	}
}

// WithSink replaces the default slice-backed store with a custom Sink.
// If sink is nil, this option is ignored.
func WithSink[T any](sink Sink[T]) Option[T] {
	return func(opts *ringOptions[T]) {
		if sink != nil {
			opts.sink = sink
		}
	}
}

// WithMetrics enables Prometheus metrics export for buffer statistics.
// The prefix becomes the component label on every metric. If registry is
// nil, this option is ignored; an empty prefix may be filled in by
// NewFromConfig from the config's metrics_prefix.
func WithMetrics[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(opts *ringOptions[T]) {
		if registry != nil {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithEvictionCallback sets a callback invoked with each element overwritten
// by a full-buffer Add.
func WithEvictionCallback[T any](callback EvictionCallback[T]) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.evictionCallback = callback
	}
}

// applyOptions applies functional options to create final buffer configuration.
// This is an internal helper used by buffer constructors.
func applyOptions[T any](options ...Option[T]) *ringOptions[T] {
	opts := &ringOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
