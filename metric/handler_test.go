package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServer_Defaults(t *testing.T) {
	registry := NewMetricsRegistry()

	server := NewServer(0, "", registry)

	assert.Equal(t, 9090, server.port)
	assert.Equal(t, "/metrics", server.path)
	assert.Equal(t, "http://localhost:9090/metrics", server.Address())
}

func TestNewServer_CustomPortAndPath(t *testing.T) {
	registry := NewMetricsRegistry()

	server := NewServer(8123, "/ring-metrics", registry)

	assert.Equal(t, 8123, server.port)
	assert.Equal(t, "/ring-metrics", server.path)
	assert.Equal(t, "http://localhost:8123/ring-metrics", server.Address())
}

func TestServer_StartWithoutRegistry(t *testing.T) {
	server := NewServer(0, "", nil)

	err := server.Start()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metrics registry not provided")
}

func TestServer_StopWithoutStart(t *testing.T) {
	server := NewServer(0, "", NewMetricsRegistry())

	// Stop on a never-started server is a no-op
	assert.NoError(t, server.Stop())
}
