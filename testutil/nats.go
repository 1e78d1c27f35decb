package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

// PublishedMessage is one message captured by MockNATSConn.
type PublishedMessage struct {
	Subject string
	Data    []byte
}

// MockNATSConn is a simple in-memory NATS connection for testing publishers.
// Matches the nats.Conn Publish signature. Thread-safe for concurrent use
// from multiple goroutines.
type MockNATSConn struct {
	mu        sync.RWMutex
	published []PublishedMessage
	bySubject map[string][][]byte
	closed    bool

	// PublishErr, when non-nil, is returned by every Publish call.
	PublishErr error
}

// NewMockNATSConn creates a new mock NATS connection.
func NewMockNATSConn() *MockNATSConn {
	return &MockNATSConn{
		bySubject: make(map[string][][]byte),
	}
}

// Publish captures a message on a subject (matches nats.Conn signature).
func (c *MockNATSConn) Publish(subject string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("connection is closed")
	}
	if c.PublishErr != nil {
		return c.PublishErr
	}

	// Copy the payload so later mutation by the caller cannot race
	stored := make([]byte, len(data))
	copy(stored, data)

	c.published = append(c.published, PublishedMessage{Subject: subject, Data: stored})
	c.bySubject[subject] = append(c.bySubject[subject], stored)
	return nil
}

// Published returns a copy of every captured message in publish order.
func (c *MockNATSConn) Published() []PublishedMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]PublishedMessage, len(c.published))
	copy(out, c.published)
	return out
}

// GetMessages returns all payloads published to a subject.
func (c *MockNATSConn) GetMessages(subject string) [][]byte {
	c.mu.RLock()
	defer c.mu.RUnlock()

	msgs := c.bySubject[subject]
	if msgs == nil {
		return nil
	}
	// Return a copy to prevent races on the returned slice
	result := make([][]byte, len(msgs))
	copy(result, msgs)
	return result
}

// GetMessageCount returns the number of messages on a subject.
func (c *MockNATSConn) GetMessageCount(subject string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bySubject[subject])
}

// Count returns the total number of captured messages across all subjects.
func (c *MockNATSConn) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.published)
}

// ClearAll discards all captured messages.
func (c *MockNATSConn) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.published = nil
	c.bySubject = make(map[string][][]byte)
}

// Close closes the mock connection. Subsequent publishes fail.
func (c *MockNATSConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// IsClosed returns whether the connection is closed.
func (c *MockNATSConn) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// WaitForMessageCount waits for a specific number of messages on a subject
// (with timeout).
func WaitForMessageCount(t *testing.T, conn *MockNATSConn, subject string, count int, timeout time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			got := conn.GetMessageCount(subject)
			t.Fatalf("timeout waiting for %d messages on subject %s (got %d)", count, subject, got)
			return
		case <-ticker.C:
			if conn.GetMessageCount(subject) >= count {
				return
			}
		}
	}
}
