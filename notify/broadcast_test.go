package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ringkit/errors"
)

func receiveEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()

	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
		return Event{}
	}
}

func TestBroadcasterSubscribeReceive(t *testing.T) {
	b := NewBroadcaster(0)
	defer b.Close()

	id, ch, err := b.Subscribe()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, b.SubscriberCount())

	b.PropertyChanged(PropertyHead)
	b.CollectionReset()

	ev := receiveEvent(t, ch)
	assert.Equal(t, KindPropertyChanged, ev.Kind)
	assert.Equal(t, PropertyHead, ev.Property)
	assert.False(t, ev.Time.IsZero())

	ev = receiveEvent(t, ch)
	assert.Equal(t, KindCollectionReset, ev.Kind)
}

func TestBroadcasterMultipleSubscribers(t *testing.T) {
	b := NewBroadcaster(4)
	defer b.Close()

	channels := make([]<-chan Event, 3)
	for i := range channels {
		_, ch, err := b.Subscribe()
		require.NoError(t, err)
		channels[i] = ch
	}
	assert.Equal(t, 3, b.SubscriberCount())

	b.PropertyChanged(PropertyCount)

	for i, ch := range channels {
		ev := receiveEvent(t, ch)
		assert.Equal(t, PropertyCount, ev.Property, "subscriber %d", i)
	}
}

func TestBroadcasterUnsubscribe(t *testing.T) {
	b := NewBroadcaster(0)
	defer b.Close()

	id, ch, err := b.Subscribe()
	require.NoError(t, err)

	require.NoError(t, b.Unsubscribe(id))
	assert.Equal(t, 0, b.SubscriberCount())

	_, open := <-ch
	assert.False(t, open, "unsubscribed channel should be closed")

	assert.ErrorIs(t, b.Unsubscribe(id), errors.ErrSubscriberNotFound)
	assert.ErrorIs(t, b.Unsubscribe("no-such-id"), errors.ErrSubscriberNotFound)
}

func TestBroadcasterDropsStalledSubscriber(t *testing.T) {
	b := NewBroadcaster(1)
	defer b.Close()

	_, stalled, err := b.Subscribe()
	require.NoError(t, err)
	_, healthy, err := b.Subscribe()
	require.NoError(t, err)

	// First event fills both single-slot buffers; only healthy drains.
	b.PropertyChanged(PropertyCount)
	assert.Equal(t, PropertyCount, receiveEvent(t, healthy).Property)

	// Second event finds the stalled buffer still full: that subscriber is
	// dropped, healthy is untouched.
	b.PropertyChanged(PropertyHead)

	assert.Equal(t, 1, b.SubscriberCount())
	assert.Equal(t, int64(1), b.Stalled())

	// The stalled channel still yields the buffered event, then closes.
	ev := receiveEvent(t, stalled)
	assert.Equal(t, PropertyCount, ev.Property)
	_, open := <-stalled
	assert.False(t, open, "stalled channel should be closed after drop")

	assert.Equal(t, PropertyHead, receiveEvent(t, healthy).Property)
}

func TestBroadcasterClose(t *testing.T) {
	b := NewBroadcaster(0)

	_, ch, err := b.Subscribe()
	require.NoError(t, err)

	b.Close()
	b.Close() // idempotent

	_, open := <-ch
	assert.False(t, open, "close should close subscriber channels")
	assert.Equal(t, 0, b.SubscriberCount())

	_, _, err = b.Subscribe()
	assert.ErrorIs(t, err, errors.ErrBroadcasterClosed)

	// Emissions after Close are no-ops.
	b.PropertyChanged(PropertyCount)
	b.CollectionReset()
}

func TestBroadcasterConcurrentEmit(t *testing.T) {
	const (
		emitters   = 4
		perEmitter = 25
	)

	b := NewBroadcaster(emitters * perEmitter)

	_, ch, err := b.Subscribe()
	require.NoError(t, err)

	received := make(chan int, 1)
	go func() {
		n := 0
		for range ch {
			n++
		}
		received <- n
	}()

	var wg sync.WaitGroup
	for i := 0; i < emitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perEmitter; j++ {
				b.PropertyChanged(PropertyCount)
			}
		}()
	}
	wg.Wait()
	b.Close()

	select {
	case n := <-received:
		assert.Equal(t, emitters*perEmitter, n,
			"buffer sized for the full burst should deliver every event")
	case <-time.After(2 * time.Second):
		t.Fatal("receiver never finished")
	}

	assert.Equal(t, int64(0), b.Stalled())
}
