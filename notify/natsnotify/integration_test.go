//go:build integration

package natsnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/c360/ringkit/notify"
)

// Helper function to start NATS container
func startNATSContainer(ctx context.Context, t *testing.T) (testcontainers.Container, string) {
	req := testcontainers.ContainerRequest{
		Image:        "nats:latest",
		ExposedPorts: []string{"4222/tcp", "8222/tcp"},
		WaitingFor:   wait.ForListeningPort("4222/tcp"),
		Cmd:          []string{"-m", "8222"}, // Enable monitoring
	}

	natsContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := natsContainer.Host(ctx)
	require.NoError(t, err)

	port, err := natsContainer.MappedPort(ctx, "4222")
	require.NoError(t, err)

	natsURL := fmt.Sprintf("nats://%s:%s", host, port.Port())

	// Wait for NATS to be fully ready
	time.Sleep(100 * time.Millisecond)

	return natsContainer, natsURL
}

// TestIntegration_PublishToRealNATS verifies that notifications arrive on a
// real NATS server with the documented subjects and payloads.
func TestIntegration_PublishToRealNATS(t *testing.T) {
	ctx := context.Background()

	natsContainer, natsURL := startNATSContainer(ctx, t)
	defer natsContainer.Terminate(ctx)

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	// Subscribe to everything under the prefix before publishing.
	sub, err := nc.SubscribeSync("ring.>")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	publisher, err := NewPublisher(nc, "ring")
	require.NoError(t, err)

	publisher.PropertyChanged(notify.PropertyCount)
	publisher.PropertyChanged(notify.PropertyItems)
	publisher.CollectionReset()

	wantSubjects := []string{
		"ring.property.count",
		"ring.property.items",
		"ring.reset",
	}
	for _, want := range wantSubjects {
		msg, err := sub.NextMsg(5 * time.Second)
		require.NoError(t, err, "waiting for %s", want)
		assert.Equal(t, want, msg.Subject)

		var ev notify.Event
		require.NoError(t, json.Unmarshal(msg.Data, &ev))
		assert.False(t, ev.Time.IsZero())
	}

	assert.Equal(t, int64(3), publisher.Published())
	assert.Equal(t, int64(0), publisher.Failed())
}

// TestIntegration_PropertySubscriber verifies that a consumer can follow a
// single property subject without seeing unrelated traffic.
func TestIntegration_PropertySubscriber(t *testing.T) {
	ctx := context.Background()

	natsContainer, natsURL := startNATSContainer(ctx, t)
	defer natsContainer.Terminate(ctx)

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	sub, err := nc.SubscribeSync("buffers.alpha.property.head")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	publisher, err := NewPublisher(nc, "buffers.alpha")
	require.NoError(t, err)

	publisher.PropertyChanged(notify.PropertyCount)
	publisher.PropertyChanged(notify.PropertyHead)
	publisher.CollectionReset()

	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)

	var ev notify.Event
	require.NoError(t, json.Unmarshal(msg.Data, &ev))
	assert.Equal(t, notify.KindPropertyChanged, ev.Kind)
	assert.Equal(t, notify.PropertyHead, ev.Property)

	// Nothing else should arrive on the head subject.
	_, err = sub.NextMsg(500 * time.Millisecond)
	assert.ErrorIs(t, err, nats.ErrTimeout)
}
