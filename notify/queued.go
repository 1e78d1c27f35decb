package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360/ringkit/errors"
)

const defaultQueueSize = 256

// Queued decouples notification delivery from the mutating caller: it
// implements Notifier by enqueueing events onto a bounded channel consumed
// by a single goroutine that forwards them, in order, to a delegate
// Notifier. Enqueueing never blocks; when the queue is full, events are
// dropped and counted, except that a structural reset always gets through by
// evicting the oldest queued event. Dropping is safe under the
// reset-oriented contract as long as the reset itself is delivered.
type Queued struct {
	// Configuration
	delegate  Notifier
	queueSize int
	logger    *slog.Logger

	// Runtime state
	events chan Event
	wg     *sync.WaitGroup

	// Lifecycle management
	lifecycleMu sync.Mutex
	started     bool
	stopped     bool

	// Statistics (atomic)
	enqueued  int64
	delivered int64
	dropped   int64
}

// QueuedOption represents a configuration option for a Queued dispatcher
type QueuedOption func(*Queued)

// WithQueueSize sets the bounded queue capacity. Values <= 0 keep the default.
func WithQueueSize(size int) QueuedOption {
	return func(q *Queued) {
		if size > 0 {
			q.queueSize = size
		}
	}
}

// WithQueuedLogger sets the logger used for drop and shutdown warnings.
func WithQueuedLogger(logger *slog.Logger) QueuedOption {
	return func(q *Queued) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// NewQueued creates a queued dispatcher delivering to delegate.
func NewQueued(delegate Notifier, opts ...QueuedOption) (*Queued, error) {
	if delegate == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("nil delegate notifier"),
			"Queued", "NewQueued", "validate delegate")
	}

	q := &Queued{
		delegate:  delegate,
		queueSize: defaultQueueSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(q)
	}

	q.events = make(chan Event, q.queueSize)
	return q, nil
}

// Start launches the delivery goroutine. A single consumer preserves
// emission order end to end.
func (q *Queued) Start(ctx context.Context) error {
	q.lifecycleMu.Lock()
	defer q.lifecycleMu.Unlock()

	if q.started {
		return errors.ErrAlreadyStarted
	}
	if q.stopped {
		return errors.ErrAlreadyStopped
	}

	q.wg = &sync.WaitGroup{}
	q.wg.Add(1)
	go q.deliver(ctx)

	q.started = true
	return nil
}

// Stop closes the queue and waits for the remaining events to drain, up to
// timeout. Stop is idempotent. A timeout abandons undelivered events and
// returns a transient error; the dispatcher is stopped either way.
func (q *Queued) Stop(timeout time.Duration) error {
	q.lifecycleMu.Lock()
	defer q.lifecycleMu.Unlock()

	if !q.started || q.stopped {
		return nil
	}

	// Mark stopped before waiting: the channel is closed either way, and
	// enqueue must never send on a closed channel.
	close(q.events)
	q.stopped = true

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		q.logger.Warn("queued notifier stop timed out with events undelivered",
			"queue_depth", len(q.events))
		return errors.WrapTransient(
			fmt.Errorf("timeout after %v", timeout),
			"Queued", "Stop", "drain event queue")
	}
}

// PropertyChanged implements Notifier by enqueueing a property-changed event.
func (q *Queued) PropertyChanged(property string) {
	if err := q.enqueue(NewPropertyChanged(property)); err != nil {
		q.warnDropped(err, property)
	}
}

// CollectionReset implements Notifier by enqueueing a structural-reset event.
func (q *Queued) CollectionReset() {
	if err := q.enqueue(NewCollectionReset()); err != nil {
		q.warnDropped(err, "")
	}
}

// enqueue submits an event without blocking. Resets displace the oldest
// queued event when the queue is full; everything else is dropped.
func (q *Queued) enqueue(ev Event) error {
	q.lifecycleMu.Lock()
	defer q.lifecycleMu.Unlock()

	if !q.started {
		return errors.ErrNotStarted
	}
	if q.stopped {
		return errors.ErrAlreadyStopped
	}

	select {
	case q.events <- ev:
		atomic.AddInt64(&q.enqueued, 1)
		return nil
	default:
	}

	if ev.Kind == KindCollectionReset {
		// Make room: only the consumer removes events concurrently, so after
		// one eviction the send below cannot fail.
		select {
		case <-q.events:
			atomic.AddInt64(&q.dropped, 1)
		default:
		}
		select {
		case q.events <- ev:
			atomic.AddInt64(&q.enqueued, 1)
			return nil
		default:
		}
	}

	atomic.AddInt64(&q.dropped, 1)
	return errors.ErrQueueFull
}

// deliver forwards queued events to the delegate until the queue closes or
// the context is cancelled.
func (q *Queued) deliver(ctx context.Context) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-q.events:
			if !ok {
				return
			}

			switch ev.Kind {
			case KindPropertyChanged:
				q.delegate.PropertyChanged(ev.Property)
			case KindCollectionReset:
				q.delegate.CollectionReset()
			}
			atomic.AddInt64(&q.delivered, 1)
		}
	}
}

func (q *Queued) warnDropped(err error, property string) {
	// Misuse (not started / already stopped) and full-queue drops are both
	// invisible to the emitting caller; surface them in logs.
	q.logger.Warn("notification dropped",
		"error", err,
		"property", property,
		"dropped_total", atomic.LoadInt64(&q.dropped))
}

// DispatchStats represents queued dispatcher statistics
type DispatchStats struct {
	QueueSize  int   `json:"queue_size"`
	QueueDepth int   `json:"queue_depth"`
	Enqueued   int64 `json:"enqueued"`
	Delivered  int64 `json:"delivered"`
	Dropped    int64 `json:"dropped"`
}

// Stats returns current dispatcher statistics
func (q *Queued) Stats() DispatchStats {
	return DispatchStats{
		QueueSize:  q.queueSize,
		QueueDepth: len(q.events),
		Enqueued:   atomic.LoadInt64(&q.enqueued),
		Delivered:  atomic.LoadInt64(&q.delivered),
		Dropped:    atomic.LoadInt64(&q.dropped),
	}
}
