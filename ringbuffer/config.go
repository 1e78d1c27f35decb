package ringbuffer

import (
	"fmt"

	"github.com/c360/ringkit/errors"
)

// Config contains configuration for buffer creation.
type Config struct {
	// Capacity is the fixed maximum number of elements. Must be positive.
	Capacity int `json:"capacity" schema:"editable,type:int,description:Fixed maximum number of elements,min:1"`

	// MetricsPrefix is the component label used when Prometheus metrics are
	// enabled. Ignored when no metrics registry is supplied.
	MetricsPrefix string `json:"metrics_prefix" schema:"editable,type:string,description:Component label for Prometheus metrics"`
}

// DefaultConfig returns a default buffer configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:      64,
		MetricsPrefix: "ring",
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidCapacity, "ringbuffer", "Validate",
			fmt.Sprintf("capacity must be positive, got %d", c.Capacity))
	}
	return nil
}

// NewFromConfig creates a buffer from a validated configuration. Options are
// applied on top of the config; a WithMetrics option carrying an empty
// prefix inherits the config's metrics_prefix.
func NewFromConfig[T any](cfg Config, options ...Option[T]) (*RingBuffer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := applyOptions(options...)
	if opts.metricsReg != nil && opts.metricsPrefix == "" {
		options = append(options, WithMetrics[T](opts.metricsReg, cfg.MetricsPrefix))
	}

	return New(cfg.Capacity, options...)
}
