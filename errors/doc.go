// Package errors provides standardized error handling patterns for RingKit components.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, may be retried by the caller), Invalid (bad input,
// bad state, or misuse, non-retryable), and Fatal (unrecoverable, stop
// processing).
//
// Classification lets callers make informed decisions about retries and
// failure handling without hardcoded error string matching. It integrates
// with Go's standard error handling, supporting errors.Is(), errors.As(),
// and error wrapping chains.
//
// # Error Classification
//
// Errors are classified based on their type or content:
//
//   - Transient: full dispatch queues, missing connections, context
//     deadlines (safe for the caller to retry)
//   - Invalid: empty-buffer reads, out-of-range indexes, bad capacities,
//     lifecycle misuse, bad configuration (do not retry)
//   - Fatal: resource exhaustion, corruption (stop processing)
//
// # Quick Start
//
// Use standard error variables for common conditions:
//
//	// Return a standard error for a known condition
//	if count == 0 {
//	    return zero, errors.ErrEmptyBuffer
//	}
//
// Wrap errors with context for debugging:
//
//	// Wrap registration failures with component context
//	if err := registry.RegisterCounter(prefix, name, counter); err != nil {
//	    return errors.WrapTransient(err, "RingBuffer", "New", "metrics registration")
//	}
//
// Check classification at call sites:
//
//	if err := buf.Set(i, v); err != nil {
//	    if errors.IsInvalid(err) {
//	        // caller bug: bad index; report, do not retry
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// This format enables consistent log parsing and debugging across the
// module. Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() function adds context without asserting a class.
//
// # Standard Error Variables
//
// Pre-defined error variables are organized by category:
//
//   - Buffer state: ErrEmptyBuffer, ErrInvalidCapacity, ErrIndexOutOfRange
//   - Component lifecycle: ErrAlreadyStarted, ErrNotStarted,
//     ErrAlreadyStopped, ErrShuttingDown
//   - Notification delivery: ErrQueueFull, ErrBroadcasterClosed,
//     ErrSubscriberNotFound, ErrNoConnection
//   - Configuration: ErrInvalidConfig, ErrMissingConfig
//
// Use these variables instead of creating custom error messages:
//
//	// Good - uses standard variable
//	if index < 0 || index >= count {
//	    return errors.ErrIndexOutOfRange
//	}
//
//	// Avoid - custom error message
//	if index < 0 || index >= count {
//	    return errors.New("bad index")
//	}
//
// Buffer operations return sentinels unwrapped so hot paths stay
// allocation-free; constructors and registration paths return classified
// wraps carrying component and operation context. Both styles satisfy
// errors.Is against the sentinel.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	// Check error classification
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
//	// Check for specific standard errors
//	if errors.Is(err, errors.ErrEmptyBuffer) {
//	    // Buffer drained, stop consuming
//	}
//
//	// Classification is preserved through error chains
//	wrapped := errors.WrapInvalid(errors.ErrInvalidCapacity, "RingBuffer", "New", "validate capacity")
//	if errors.IsInvalid(wrapped) { // true
//	    // construction bug
//	}
//
// # Design Notes
//
// There is no retry machinery in this package. Every buffer operation is a
// single atomic step under its lock, reported synchronously to the caller:
// failures are never swallowed, never internally retried, never logged by
// the core. Classification exists so callers and delivery components can
// decide what to do next.
package errors
