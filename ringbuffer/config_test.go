package ringbuffer

import (
	"errors"
	"testing"

	cerrors "github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/metric"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Capacity != 64 {
		t.Errorf("Expected default capacity 64, got %d", cfg.Capacity)
	}
	if cfg.MetricsPrefix != "ring" {
		t.Errorf("Expected default metrics prefix 'ring', got %q", cfg.MetricsPrefix)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{"positive", 10, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Capacity: tc.capacity}
			err := cfg.Validate()
			if !tc.wantErr {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, cerrors.ErrInvalidCapacity) {
				t.Errorf("Expected error to wrap ErrInvalidCapacity, got %v", err)
			}
			if !cerrors.IsInvalid(err) {
				t.Errorf("Expected invalid classification, got %v", err)
			}
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 8

	buf, err := NewFromConfig[int](cfg)
	require.NoError(t, err, "Failed to create buffer from config")
	if buf.Capacity() != 8 {
		t.Errorf("Expected capacity 8, got %d", buf.Capacity())
	}

	cfg.Capacity = 0
	buf, err = NewFromConfig[int](cfg)
	if buf != nil || err == nil {
		t.Error("Expected creation to fail with invalid config")
	}
}

func TestNewFromConfigMetricsPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 4
	cfg.MetricsPrefix = "from_config"

	// An empty option prefix inherits the config prefix
	registry := metric.NewMetricsRegistry()
	buf, err := NewFromConfig[int](cfg, WithMetrics[int](registry, ""))
	require.NoError(t, err, "Failed to create buffer")
	buf.Add(1)
	require.Equal(t, "from_config",
		metricComponentLabel(t, registry, "ringkit_ring_adds_total"))

	// An explicit option prefix wins over the config
	registry = metric.NewMetricsRegistry()
	buf, err = NewFromConfig[int](cfg, WithMetrics[int](registry, "explicit"))
	require.NoError(t, err, "Failed to create buffer")
	buf.Add(1)
	require.Equal(t, "explicit",
		metricComponentLabel(t, registry, "ringkit_ring_adds_total"))
}

// metricComponentLabel returns the component label on the named metric, or
// an empty string if the metric is absent.
func metricComponentLabel(t *testing.T, registry *metric.MetricsRegistry, name string) string {
	t.Helper()

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err, "Failed to gather metrics")

	for _, family := range families {
		if family.GetName() != name || len(family.GetMetric()) == 0 {
			continue
		}
		for _, label := range family.GetMetric()[0].GetLabel() {
			if label.GetName() == "component" {
				return label.GetValue()
			}
		}
	}
	return ""
}
