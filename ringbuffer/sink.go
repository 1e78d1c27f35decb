package ringbuffer

// Sink is the ordered, indexable store a ring buffer drives. Positions
// 0..Len()-1 always hold the live elements oldest first.
//
// The buffer invokes sink methods only while holding its exclusive lock and
// only with indices validated against its element count, so implementations
// need no locking and no bounds checks of their own. Implementations must
// not call back into the buffer.
type Sink[T any] interface {
	// Get returns the element at index.
	Get(index int) T

	// Set replaces the element at index.
	Set(index int, item T)

	// Insert places item at index, growing the length by one. The buffer
	// only ever inserts at the append position (index == Len()).
	Insert(index int, item T)

	// RemoveAt removes the element at index, shifting later elements down.
	RemoveAt(index int)

	// Clear removes all elements.
	Clear()

	// Len returns the number of stored elements.
	Len() int
}

var _ Sink[int] = (*sliceSink[int])(nil)

// sliceSink is the default slice-backed sink. Capacity is pre-allocated so
// steady-state operation does not grow the backing array.
type sliceSink[T any] struct {
	items []T
}

func newSliceSink[T any](capacity int) *sliceSink[T] {
	return &sliceSink[T]{items: make([]T, 0, capacity)}
}

func (s *sliceSink[T]) Get(index int) T {
	return s.items[index]
}

func (s *sliceSink[T]) Set(index int, item T) {
	s.items[index] = item
}

func (s *sliceSink[T]) Insert(index int, item T) {
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[index+1:], s.items[index:])
	s.items[index] = item
}

func (s *sliceSink[T]) RemoveAt(index int) {
	var zero T
	copy(s.items[index:], s.items[index+1:])
	s.items[len(s.items)-1] = zero // Clear for GC
	s.items = s.items[:len(s.items)-1]
}

func (s *sliceSink[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero // Clear for GC
	}
	s.items = s.items[:0]
}

func (s *sliceSink[T]) Len() int {
	return len(s.items)
}
