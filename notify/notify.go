package notify

import "time"

// Property names emitted by the ring buffer. Observers coming from
// property-change systems expect these exact strings, including the
// indexer spelling "Item[]".
const (
	PropertyHead  = "Head"
	PropertyTail  = "Tail"
	PropertyCount = "Count"
	PropertyItems = "Item[]"
)

// Kind identifies the kind of change an Event describes.
type Kind string

const (
	// KindPropertyChanged signals that a named property of the collection changed.
	KindPropertyChanged Kind = "property_changed"
	// KindCollectionReset signals a structural reset: discard any incremental
	// view and re-read the collection wholesale.
	KindCollectionReset Kind = "collection_reset"
)

// Event is the serializable record of a single notification. Delivery
// components (queues, NATS, WebSocket) carry Events on the wire; the core
// Notifier contract below stays call-based.
type Event struct {
	Kind     Kind      `json:"kind"`
	Property string    `json:"property,omitempty"`
	Time     time.Time `json:"time"`
}

// NewPropertyChanged builds a property-changed event stamped with the current time.
func NewPropertyChanged(property string) Event {
	return Event{Kind: KindPropertyChanged, Property: property, Time: time.Now().UTC()}
}

// NewCollectionReset builds a structural-reset event stamped with the current time.
func NewCollectionReset() Event {
	return Event{Kind: KindCollectionReset, Time: time.Now().UTC()}
}

// Notifier receives change notifications from a ring buffer. The buffer
// calls these after its mutation has completed and its lock is released, so
// implementations may safely call back into the buffer.
//
// Implementations must not block for long: they run on the mutating caller's
// goroutine. Use Queued to decouple delivery from mutation.
type Notifier interface {
	// PropertyChanged reports that the named property changed. The names used
	// by the ring buffer are the Property* constants in this package.
	PropertyChanged(property string)
	// CollectionReset reports that the collection must be treated as replaced.
	CollectionReset()
}

// Funcs adapts plain functions to the Notifier interface. Nil fields are
// ignored, so partial observers are valid.
type Funcs struct {
	OnPropertyChanged func(property string)
	OnCollectionReset func()
}

// PropertyChanged implements Notifier.
func (f Funcs) PropertyChanged(property string) {
	if f.OnPropertyChanged != nil {
		f.OnPropertyChanged(property)
	}
}

// CollectionReset implements Notifier.
func (f Funcs) CollectionReset() {
	if f.OnCollectionReset != nil {
		f.OnCollectionReset()
	}
}

// Multi returns a Notifier that forwards each notification to every non-nil
// notifier in order. A single slow or re-entrant notifier delays the ones
// after it; wrap slow ones in Queued.
func Multi(notifiers ...Notifier) Notifier {
	filtered := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			filtered = append(filtered, n)
		}
	}
	return multiNotifier(filtered)
}

type multiNotifier []Notifier

func (m multiNotifier) PropertyChanged(property string) {
	for _, n := range m {
		n.PropertyChanged(property)
	}
}

func (m multiNotifier) CollectionReset() {
	for _, n := range m {
		n.CollectionReset()
	}
}
