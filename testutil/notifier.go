package testutil

import (
	"sync"
	"time"
)

// ResetMarker is the entry recorded in a RecordingNotifier sequence for a
// structural reset, distinguishing it from property names.
const ResetMarker = "<reset>"

// RecordingNotifier records the exact notification sequence it receives.
// Thread-safe for concurrent use from multiple goroutines.
type RecordingNotifier struct {
	mu       sync.Mutex
	sequence []string
	resets   int
	counts   map[string]int
}

// NewRecordingNotifier creates an empty recorder.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{
		counts: make(map[string]int),
	}
}

// PropertyChanged records the property name in sequence order.
func (r *RecordingNotifier) PropertyChanged(property string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence = append(r.sequence, property)
	r.counts[property]++
}

// CollectionReset records a reset marker in sequence order.
func (r *RecordingNotifier) CollectionReset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence = append(r.sequence, ResetMarker)
	r.resets++
}

// Sequence returns a copy of everything recorded so far, in order.
func (r *RecordingNotifier) Sequence() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.sequence))
	copy(out, r.sequence)
	return out
}

// Len returns the number of recorded entries.
func (r *RecordingNotifier) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sequence)
}

// PropertyCount returns how many times the named property changed.
func (r *RecordingNotifier) PropertyCount(property string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[property]
}

// ResetCount returns how many structural resets were recorded.
func (r *RecordingNotifier) ResetCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resets
}

// Reset discards everything recorded so far.
func (r *RecordingNotifier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence = nil
	r.resets = 0
	r.counts = make(map[string]int)
}

// WaitFor polls until at least n entries are recorded or the timeout
// elapses. Returns true if the target was reached. Use it when delivery is
// asynchronous (queued dispatchers, fan-out goroutines).
func (r *RecordingNotifier) WaitFor(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if r.Len() >= n {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}
