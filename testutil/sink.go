package testutil

import "sync"

// MockSink is an instrumented ordered collection for testing buffer
// integration. It behaves as a correct slice-backed sink while recording
// every call, so tests can assert exactly how the buffer drives its storage.
//
// The buffer owns locking and index validation, so MockSink performs neither
// beyond what the slice itself enforces. An out-of-range index panics, which
// is the desired behavior in tests: it means the buffer broke its side of
// the storage contract. The internal mutex only keeps the call records
// coherent when test assertions run concurrently with buffer operations.
type MockSink[T any] struct {
	mu sync.Mutex

	items []T

	// Call records, in call order.
	GetIndexes      []int
	SetIndexes      []int
	InsertIndexes   []int
	RemoveAtIndexes []int
	ClearCalls      int
	LenCalls        int
}

// NewMockSink creates an empty instrumented sink.
func NewMockSink[T any]() *MockSink[T] {
	return &MockSink[T]{}
}

// Get returns the element at index, recording the call.
func (m *MockSink[T]) Get(index int) T {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetIndexes = append(m.GetIndexes, index)
	return m.items[index]
}

// Set replaces the element at index, recording the call.
func (m *MockSink[T]) Set(index int, item T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetIndexes = append(m.SetIndexes, index)
	m.items[index] = item
}

// Insert places item at index, shifting later elements right.
func (m *MockSink[T]) Insert(index int, item T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InsertIndexes = append(m.InsertIndexes, index)
	var zero T
	m.items = append(m.items, zero)
	copy(m.items[index+1:], m.items[index:])
	m.items[index] = item
}

// RemoveAt removes the element at index, shifting later elements left.
func (m *MockSink[T]) RemoveAt(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RemoveAtIndexes = append(m.RemoveAtIndexes, index)
	var zero T
	copy(m.items[index:], m.items[index+1:])
	m.items[len(m.items)-1] = zero
	m.items = m.items[:len(m.items)-1]
}

// Clear removes all elements, recording the call.
func (m *MockSink[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ClearCalls++
	m.items = nil
}

// Len returns the element count, recording the call.
func (m *MockSink[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LenCalls++
	return len(m.items)
}

// Items returns a copy of the current contents oldest first.
func (m *MockSink[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}
