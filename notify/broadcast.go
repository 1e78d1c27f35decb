package notify

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/c360/ringkit/errors"
)

const defaultSubscriptionBufSize = 16

// Broadcaster implements Notifier by fanning events out to dynamically
// subscribed channels. Sends never block: a subscriber whose buffer is full
// is treated as stalled, its channel is closed, and the subscription is
// removed. A consumer that finds its channel closed should resubscribe and
// re-read the collection wholesale, which is exactly the recovery the
// structural-reset contract already demands.
type Broadcaster struct {
	mu      sync.Mutex
	subs    map[string]chan Event
	bufSize int
	closed  bool

	stalled int64
}

// NewBroadcaster creates a broadcaster. subscriptionBufSize is the buffer of
// each subscriber channel; once a buffer is full that subscriber is dropped,
// so size it for the expected burst between consumer reads. Values <= 0 use
// the default.
func NewBroadcaster(subscriptionBufSize int) *Broadcaster {
	if subscriptionBufSize <= 0 {
		subscriptionBufSize = defaultSubscriptionBufSize
	}
	return &Broadcaster{
		subs:    make(map[string]chan Event),
		bufSize: subscriptionBufSize,
	}
}

// Subscribe registers a new subscriber and returns its id and event channel.
// The channel is closed when the subscriber stalls, is unsubscribed, or the
// broadcaster is closed.
func (b *Broadcaster) Subscribe() (string, <-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return "", nil, errors.ErrBroadcasterClosed
	}

	id := uuid.NewString()
	ch := make(chan Event, b.bufSize)
	b.subs[id] = ch
	return id, ch, nil
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broadcaster) Unsubscribe(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subs[id]
	if !ok {
		return errors.ErrSubscriberNotFound
	}
	close(ch)
	delete(b.subs, id)
	return nil
}

// PropertyChanged implements Notifier.
func (b *Broadcaster) PropertyChanged(property string) {
	b.fanOut(NewPropertyChanged(property))
}

// CollectionReset implements Notifier.
func (b *Broadcaster) CollectionReset() {
	b.fanOut(NewCollectionReset())
}

func (b *Broadcaster) fanOut(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber is not draining its channel. Close it so the
			// consumer notices instead of silently losing arbitrary events.
			close(ch)
			delete(b.subs, id)
			atomic.AddInt64(&b.stalled, 1)
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Stalled returns how many subscribers have been dropped for not draining
// their channels.
func (b *Broadcaster) Stalled() int64 {
	return atomic.LoadInt64(&b.stalled)
}

// Close closes every subscriber channel and makes further emissions no-ops.
// Close is idempotent.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
	b.closed = true
}
