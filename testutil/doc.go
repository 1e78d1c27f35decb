// Package testutil provides testing utilities for RingKit packages.
//
// # Overview
//
// The testutil package contains mock implementations and helper functions
// designed to simplify writing tests for RingKit buffers and notification
// pipelines. All utilities are structurally compatible with the real
// contracts (Notifier, Sink, NATS connection) without importing the packages
// under test, so every package can use them without import cycles.
//
// # Core Components
//
// Mock Implementations:
//
// RecordingNotifier - Ordered capture of change notifications:
//   - Thread-safe for concurrent use
//   - Records property names and reset markers in arrival order
//   - Per-property counters and reset counter
//   - WaitFor helper for asynchronous delivery paths
//
// MockSink - Instrumented ordered collection:
//   - Correct slice-backed behavior (Get/Set/Insert/RemoveAt/Clear/Len)
//   - Records every call with its index argument
//   - Panics on out-of-range indexes, surfacing buffer contract violations
//
// MockNATSConn - In-memory NATS connection for testing publishers:
//   - Thread-safe for concurrent use
//   - Stores all published messages for verification
//   - Configurable error injection via PublishErr
//   - No external NATS server required
//
// Test Helpers:
//
//   - WaitForMessageCount: Waits for N messages on a subject
//   - RecordingNotifier.WaitFor: Waits for N recorded notifications
//
// # Design Principles
//
// Structural Compatibility:
//
// Mocks satisfy the real interfaces by method shape alone. RecordingNotifier
// implements notify.Notifier, MockSink implements ringbuffer.Sink, and
// MockNATSConn implements natsnotify.Conn, without this package importing
// any of them. Tests inside those packages can therefore use testutil freely.
//
// Thread Safety:
//
// All mock types are safe for concurrent use from multiple goroutines.
// This enables testing concurrent buffer mutation without data races:
//
//	// Safe to use from multiple goroutines
//	go buf.Add(1)
//	go buf.Add(2)
//	seq := recorder.Sequence()
//
// Real Dependencies Preferred:
//
// Use mocks ONLY when real dependencies are impractical:
//   - ✅ Use testcontainers for NATS (real behavior)
//   - ⚠️ Use MockNATSConn when testcontainers unavailable
//   - ❌ Don't mock when real dependencies are fast/easy
//
// # Usage Examples
//
// Basic RecordingNotifier:
//
//	func TestAddNotifies(t *testing.T) {
//	    recorder := testutil.NewRecordingNotifier()
//	    buf, err := ringbuffer.New[int](3, ringbuffer.WithNotifier[int](recorder))
//	    require.NoError(t, err)
//
//	    buf.Add(42)
//
//	    seq := recorder.Sequence()
//	    assert.Contains(t, seq, "Count")
//	    assert.Equal(t, testutil.ResetMarker, seq[len(seq)-1])
//	}
//
// Wait Helpers:
//
//	func TestQueuedDelivery(t *testing.T) {
//	    recorder := testutil.NewRecordingNotifier()
//	    queued, _ := notify.NewQueued(recorder)
//	    _ = queued.Start(context.Background())
//	    defer queued.Stop(time.Second)
//
//	    queued.PropertyChanged("Count")
//
//	    if !recorder.WaitFor(1, time.Second) {
//	        t.Fatal("notification never delivered")
//	    }
//	}
//
// # Known Limitations
//
//  1. WaitFor and WaitForMessageCount use polling - adds latency to tests
//  2. MockNATSConn has no subscription side; it only captures publishes
//  3. MockSink cannot inject failures; the storage contract is error-free
//
// These are design trade-offs - mocks prioritize simplicity over completeness.
//
// # See Also
//
//   - notify: Notifier contract and delivery strategies
//   - ringbuffer: Buffer core and Sink contract
//   - natsnotify: NATS-backed notifier
package testutil
