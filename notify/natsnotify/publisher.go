// Package natsnotify bridges buffer change notifications onto NATS subjects,
// so observers in other processes can follow a buffer without sharing memory
// with it. Each notification is published as a JSON notify.Event.
package natsnotify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/notify"
)

// Conn is the slice of a NATS connection the publisher needs. *nats.Conn
// satisfies it directly.
type Conn interface {
	Publish(subject string, data []byte) error
}

var _ notify.Notifier = (*Publisher)(nil)

// Publisher implements notify.Notifier by publishing each notification to a
// NATS subject under a configured prefix:
//
//	<prefix>.property.head    Head changed
//	<prefix>.property.tail    Tail changed
//	<prefix>.property.count   Count changed
//	<prefix>.property.items   Item[] changed
//	<prefix>.reset            structural reset
//
// Publishing is fire-and-forget: failures are logged and counted, never
// surfaced to the mutating caller. Remote observers that miss events recover
// on the next reset, so a lost message degrades freshness, not correctness.
type Publisher struct {
	conn   Conn
	prefix string
	logger *slog.Logger

	// Statistics (atomic)
	published int64
	failed    int64
}

// Option represents a configuration option for a Publisher
type Option func(*Publisher)

// WithLogger sets the logger used for publish failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPublisher creates a publisher sending to subjects under subjectPrefix.
func NewPublisher(conn Conn, subjectPrefix string, opts ...Option) (*Publisher, error) {
	if conn == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("nil connection"),
			"Publisher", "NewPublisher", "validate connection")
	}
	if subjectPrefix == "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("empty subject prefix"),
			"Publisher", "NewPublisher", "validate subject prefix")
	}

	p := &Publisher{
		conn:   conn,
		prefix: subjectPrefix,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// PropertyChanged implements notify.Notifier.
func (p *Publisher) PropertyChanged(property string) {
	subject := fmt.Sprintf("%s.property.%s", p.prefix, subjectToken(property))
	p.publish(subject, notify.NewPropertyChanged(property))
}

// CollectionReset implements notify.Notifier.
func (p *Publisher) CollectionReset() {
	p.publish(p.prefix+".reset", notify.NewCollectionReset())
}

// Published returns the number of successfully published events.
func (p *Publisher) Published() int64 {
	return atomic.LoadInt64(&p.published)
}

// Failed returns the number of events that could not be published.
func (p *Publisher) Failed() int64 {
	return atomic.LoadInt64(&p.failed)
}

func (p *Publisher) publish(subject string, ev notify.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		atomic.AddInt64(&p.failed, 1)
		p.logger.Error("failed to marshal notification event",
			"error", errors.Wrap(err, "Publisher", "publish", "marshal event"),
			"subject", subject)
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		atomic.AddInt64(&p.failed, 1)
		p.logger.Warn("failed to publish notification event",
			"error", errors.WrapTransient(err, "Publisher", "publish",
				fmt.Sprintf("publish to %s", subject)),
			"subject", subject)
		return
	}

	atomic.AddInt64(&p.published, 1)
}

// subjectToken maps a property name to a subject-safe token. The indexer
// name "Item[]" contains characters NATS subjects do not allow.
func subjectToken(property string) string {
	switch property {
	case notify.PropertyHead:
		return "head"
	case notify.PropertyTail:
		return "tail"
	case notify.PropertyCount:
		return "count"
	case notify.PropertyItems:
		return "items"
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, property)
}
