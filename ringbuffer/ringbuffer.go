package ringbuffer

import (
	"fmt"
	"sync"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/notify"
)

// RingBuffer is a thread-safe, fixed-capacity FIFO collection that
// overwrites its oldest element when full and reports every mutation to an
// optional change notifier.
type RingBuffer[T any] struct {
	mu       sync.RWMutex
	capacity int
	head     int // Ring index of the oldest element
	tail     int // Ring index of the newest element, -1 when empty
	count    int
	sink     Sink[T]

	// Immutable after construction, read without the lock.
	notifier notify.Notifier
	onEvict  EvictionCallback[T]
	stats    *Statistics  // ALWAYS initialized for observability
	metrics  *ringMetrics // Optional Prometheus metrics
}

// New creates a ring buffer with the given fixed capacity.
// Stats are ALWAYS collected for observability. Metrics are optional via
// WithMetrics(). Returns an error if capacity is not positive or metrics
// registration fails.
func New[T any](capacity int, options ...Option[T]) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity,
			"RingBuffer", "New", fmt.Sprintf("capacity %d", capacity))
	}

	opts := applyOptions(options...)

	// Stats are ALWAYS initialized - observability is not optional
	stats := NewStatistics()

	var metrics *ringMetrics
	// Optionally expose stats as Prometheus metrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newRingMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "RingBuffer", "New", "metrics registration")
		}
	}

	sink := opts.sink
	if sink == nil {
		sink = newSliceSink[T](capacity)
	}

	return &RingBuffer[T]{
		capacity: capacity,
		tail:     -1,
		sink:     sink,
		notifier: opts.notifier,
		onEvict:  opts.evictionCallback,
		stats:    stats,
		metrics:  metrics,
	}, nil
}

// Add appends item as the new tail. When the buffer is full the oldest
// element is evicted to make room; the evicted value is handed to the
// eviction callback if one is configured. Add never fails.
func (rb *RingBuffer[T]) Add(item T) {
	rb.mu.Lock()

	var evicted T
	hasEvicted := false

	if rb.count == rb.capacity {
		evicted = rb.sink.Get(0)
		hasEvicted = true
		rb.sink.RemoveAt(0)
		rb.sink.Insert(rb.sink.Len(), item)
		rb.head = (rb.head + 1) % rb.capacity
		rb.tail = (rb.tail + 1) % rb.capacity

		rb.stats.Evict()
		if rb.metrics != nil {
			rb.metrics.recordEviction()
		}
	} else {
		rb.sink.Insert(rb.sink.Len(), item)
		if rb.count == 0 {
			rb.tail = rb.head
		} else {
			rb.tail = (rb.tail + 1) % rb.capacity
		}
		rb.count++
	}

	rb.stats.Add()
	rb.stats.UpdateSize(int64(rb.count))
	if rb.metrics != nil {
		rb.metrics.recordAdd(rb.count, rb.capacity)
	}

	rb.mu.Unlock()

	// Callback and notifications run outside the lock so observers may call
	// back into the buffer without deadlocking.
	if hasEvicted && rb.onEvict != nil {
		rb.onEvict(evicted)
	}
	rb.notifyMutation()
}

// Remove removes and returns the oldest element. Returns ErrEmptyBuffer
// when the buffer is empty; nothing is mutated and nothing is emitted.
func (rb *RingBuffer[T]) Remove() (T, error) {
	rb.mu.Lock()

	if rb.count == 0 {
		rb.mu.Unlock()
		var zero T
		return zero, errors.ErrEmptyBuffer
	}

	item := rb.sink.Get(0)
	rb.sink.RemoveAt(0)
	rb.count--
	rb.head = (rb.head + 1) % rb.capacity
	if rb.count == 0 {
		rb.tail = -1
	}

	rb.stats.Remove()
	rb.stats.UpdateSize(int64(rb.count))
	if rb.metrics != nil {
		rb.metrics.recordRemove(rb.count, rb.capacity)
	}

	rb.mu.Unlock()

	rb.notifyMutation()
	return item, nil
}

// Head returns the oldest element without removing it.
// Returns ErrEmptyBuffer when the buffer is empty.
func (rb *RingBuffer[T]) Head() (T, error) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	var zero T
	if rb.count == 0 {
		// Don't record a miss for empty reads, just return
		return zero, errors.ErrEmptyBuffer
	}

	rb.stats.Read()
	return rb.sink.Get(0), nil
}

// Tail returns the newest element without removing it.
// Returns ErrEmptyBuffer when the buffer is empty.
func (rb *RingBuffer[T]) Tail() (T, error) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	var zero T
	if rb.count == 0 {
		return zero, errors.ErrEmptyBuffer
	}

	rb.stats.Read()
	return rb.sink.Get(rb.count - 1), nil
}

// At returns the element at position index, where 0 is the oldest element.
// Returns ErrIndexOutOfRange when index is not in [0, Size()).
func (rb *RingBuffer[T]) At(index int) (T, error) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	var zero T
	if index < 0 || index >= rb.count {
		return zero, errors.ErrIndexOutOfRange
	}

	rb.stats.Read()
	return rb.sink.Get(index), nil
}

// Set replaces the element at position index without moving head or tail.
// Returns ErrIndexOutOfRange when index is not in [0, Size()).
func (rb *RingBuffer[T]) Set(index int, item T) error {
	rb.mu.Lock()

	if index < 0 || index >= rb.count {
		rb.mu.Unlock()
		return errors.ErrIndexOutOfRange
	}

	rb.sink.Set(index, item)
	rb.stats.Set()
	if rb.metrics != nil {
		rb.metrics.recordSet()
	}

	rb.mu.Unlock()

	// Head, tail, and count are untouched: only the indexer changed.
	rb.notifyIndexer()
	return nil
}

// Clear removes every element. A cleared buffer behaves identically to a
// freshly constructed one of the same capacity. Clear never fails.
func (rb *RingBuffer[T]) Clear() {
	rb.mu.Lock()

	rb.sink.Clear()
	rb.head = 0
	rb.tail = -1
	rb.count = 0

	rb.stats.Clear()
	rb.stats.UpdateSize(0)
	if rb.metrics != nil {
		rb.metrics.recordClear()
	}

	rb.mu.Unlock()

	rb.notifyMutation()
}

// Items returns a snapshot of the live elements oldest first. The result is
// never nil and is safe to retain.
func (rb *RingBuffer[T]) Items() []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	items := make([]T, rb.count)
	for i := 0; i < rb.count; i++ {
		items[i] = rb.sink.Get(i)
	}

	if rb.count > 0 {
		rb.stats.Read()
	}
	return items
}

// Size returns the current number of elements.
func (rb *RingBuffer[T]) Size() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count
}

// Capacity returns the fixed maximum number of elements.
func (rb *RingBuffer[T]) Capacity() int {
	return rb.capacity // This is immutable, so no lock needed
}

// IsEmpty returns true if the buffer contains no elements.
func (rb *RingBuffer[T]) IsEmpty() bool {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count == 0
}

// IsFull returns true if the buffer is at capacity.
func (rb *RingBuffer[T]) IsFull() bool {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count == rb.capacity
}

// Stats returns a snapshot of the buffer's statistics.
func (rb *RingBuffer[T]) Stats() StatsSummary {
	return rb.stats.Summary()
}

// notifyMutation emits the full change sequence for operations that move
// head, tail, or count. The trailing reset tells observers to re-read the
// collection wholesale rather than track incremental positions.
func (rb *RingBuffer[T]) notifyMutation() {
	if rb.notifier == nil {
		return
	}

	rb.notifier.PropertyChanged(notify.PropertyCount)
	rb.notifier.PropertyChanged(notify.PropertyHead)
	rb.notifier.PropertyChanged(notify.PropertyTail)
	rb.notifier.PropertyChanged(notify.PropertyItems)
	rb.notifier.CollectionReset()
}

// notifyIndexer emits the reduced sequence for in-place replacement.
func (rb *RingBuffer[T]) notifyIndexer() {
	if rb.notifier == nil {
		return
	}

	rb.notifier.PropertyChanged(notify.PropertyItems)
	rb.notifier.CollectionReset()
}
