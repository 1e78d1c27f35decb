package ringbuffer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks buffer operation counts and derived rates. All recording
// methods are safe for concurrent use.
type Statistics struct {
	// Atomic counters for thread-safe updates
	adds      int64
	removes   int64
	evictions int64
	sets      int64
	clears    int64
	reads     int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Add records an add operation.
func (s *Statistics) Add() {
	atomic.AddInt64(&s.adds, 1)
}

// Remove records a remove operation.
func (s *Statistics) Remove() {
	atomic.AddInt64(&s.removes, 1)
}

// Evict records the overwrite of the oldest element by a full-buffer add.
func (s *Statistics) Evict() {
	atomic.AddInt64(&s.evictions, 1)
}

// Set records an in-place replacement.
func (s *Statistics) Set() {
	atomic.AddInt64(&s.sets, 1)
}

// Clear records a clear operation. To zero the statistics themselves use
// Reset.
func (s *Statistics) Clear() {
	atomic.AddInt64(&s.clears, 1)
}

// Read records a non-mutating element access (head, tail, positional,
// snapshot).
func (s *Statistics) Read() {
	atomic.AddInt64(&s.reads, 1)
}

// UpdateSize updates the current buffer size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Adds returns the total number of add operations.
func (s *Statistics) Adds() int64 {
	return atomic.LoadInt64(&s.adds)
}

// Removes returns the total number of remove operations.
func (s *Statistics) Removes() int64 {
	return atomic.LoadInt64(&s.removes)
}

// Evictions returns the total number of overwritten elements.
func (s *Statistics) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// Sets returns the total number of in-place replacements.
func (s *Statistics) Sets() int64 {
	return atomic.LoadInt64(&s.sets)
}

// Clears returns the total number of clear operations.
func (s *Statistics) Clears() int64 {
	return atomic.LoadInt64(&s.clears)
}

// Reads returns the total number of non-mutating element accesses.
func (s *Statistics) Reads() int64 {
	return atomic.LoadInt64(&s.reads)
}

// CurrentSize returns the current number of elements in the buffer.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the largest number of elements the buffer has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of adds per second since start or
// the last Reset.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Adds()) / elapsed.Seconds()
}

// EvictionRate returns the fraction of adds that overwrote an element
// (0.0 to 1.0).
func (s *Statistics) EvictionRate() float64 {
	adds := s.Adds()
	if adds == 0 {
		return 0.0
	}

	return float64(s.Evictions()) / float64(adds)
}

// Utilization returns the current fill level relative to capacity
// (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the buffer has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero and restarts the uptime clock.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.adds, 0)
	atomic.StoreInt64(&s.removes, 0)
	atomic.StoreInt64(&s.evictions, 0)
	atomic.StoreInt64(&s.sets, 0)
	atomic.StoreInt64(&s.clears, 0)
	atomic.StoreInt64(&s.reads, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Adds         int64         `json:"adds"`
	Removes      int64         `json:"removes"`
	Evictions    int64         `json:"evictions"`
	Sets         int64         `json:"sets"`
	Clears       int64         `json:"clears"`
	Reads        int64         `json:"reads"`
	CurrentSize  int64         `json:"current_size"`
	MaxSize      int64         `json:"max_size"`
	Throughput   float64       `json:"throughput"`
	EvictionRate float64       `json:"eviction_rate"`
	Uptime       time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Adds:         s.Adds(),
		Removes:      s.Removes(),
		Evictions:    s.Evictions(),
		Sets:         s.Sets(),
		Clears:       s.Clears(),
		Reads:        s.Reads(),
		CurrentSize:  s.CurrentSize(),
		MaxSize:      s.MaxSize(),
		Throughput:   s.Throughput(),
		EvictionRate: s.EvictionRate(),
		Uptime:       s.Uptime(),
	}
}
