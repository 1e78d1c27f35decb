// Package notify defines the change-notification contract for observable
// collections and provides delivery strategies for it.
//
// # Overview
//
// A ring buffer reports changes through the narrow Notifier interface:
// property changes ("Head", "Tail", "Count", "Item[]") and structural resets
// ("treat the whole collection as replaced"). The buffer never implements
// dispatch, threading, or subscriber management; those live here.
//
// The contract is deliberately reset-oriented: every mutation's emission
// sequence ends in CollectionReset, telling observers to re-read the
// collection wholesale rather than track incremental diffs. The mapping
// from logical ring position to physical position is non-trivial under
// wraparound, so fine-grained diff notifications are not attempted. This
// also makes bounded delivery safe: intermediate events may be dropped as
// long as the reset gets through.
//
// # Delivery Strategies
//
// Three Notifier implementations cover the common topologies:
//
//   - Funcs / Multi: inline synchronous delivery on the mutating goroutine,
//     for cheap observers and tests.
//   - Queued: a bounded queue with a single delivery goroutine, preserving
//     order while keeping mutators non-blocking. Full queues drop events
//     (counted and logged), except resets, which displace the oldest queued
//     event.
//   - Broadcaster: dynamic subscriber fan-out over buffered channels.
//     Stalled subscribers are disconnected rather than blocking emission.
//
// The natsnotify and wsnotify subpackages carry events across process
// boundaries as JSON.
//
// # Usage
//
// Inline observation:
//
//	var buf *ringbuffer.RingBuffer[int]
//	buf, err := ringbuffer.New[int](8, ringbuffer.WithNotifier[int](notify.Funcs{
//	    OnCollectionReset: func() { render(buf.Items()) },
//	}))
//
// Decoupled delivery:
//
//	queued, err := notify.NewQueued(hub)
//	if err != nil { ... }
//	if err := queued.Start(ctx); err != nil { ... }
//	defer queued.Stop(5 * time.Second)
//
//	buf, err := ringbuffer.New[int](8, ringbuffer.WithNotifier[int](queued))
//
// Subscription:
//
//	b := notify.NewBroadcaster(64)
//	id, events, err := b.Subscribe()
//	if err != nil { ... }
//	go func() {
//	    for ev := range events {
//	        if ev.Kind == notify.KindCollectionReset {
//	            refresh()
//	        }
//	    }
//	    // channel closed: stalled or shut down; resubscribe and refresh
//	}()
//
// # Ordering and Timing
//
// The buffer emits after its mutation completes and its lock is released, so
// notifier implementations may call back into the buffer freely. Under
// concurrent mutation, the sequences of different operations may interleave;
// correctness is preserved because observers act on resets, not on event
// arithmetic.
package notify
