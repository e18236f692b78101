package bus

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Metadata carries optional routing context that is never inspected by the
// storage engine.
type Metadata struct {
	CorrelationID string `json:"correlation_id,omitempty"` // Links related events across services
	Source        string `json:"source,omitempty"`         // Origin component or service
	Version       string `json:"version,omitempty"`        // Schema version of the payload
}

// Event represents a message buffered by a bus. The ID is the deduplication
// key for queue buses; Priority and Timestamp together determine read order.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Priority  Priority  `json:"priority"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Metadata  Metadata  `json:"metadata,omitzero"`
}

// EventOption customizes an event created by NewEvent.
type EventOption func(*Event)

// WithPriority sets the event priority. Out-of-range values are ignored.
func WithPriority(p Priority) EventOption {
	return func(e *Event) {
		if p.Valid() {
			e.Priority = p
		}
	}
}

// WithEventType overrides the type name derived from the payload.
func WithEventType(name string) EventOption {
	return func(e *Event) {
		if name != "" {
			e.Type = name
		}
	}
}

// WithEventID overrides the auto-generated event ID. Useful when the producer
// already has a stable identifier for deduplication.
func WithEventID(id string) EventOption {
	return func(e *Event) {
		if id != "" {
			e.ID = id
		}
	}
}

// WithTimestamp overrides the event creation time.
func WithTimestamp(ts time.Time) EventOption {
	return func(e *Event) {
		if !ts.IsZero() {
			e.Timestamp = ts
		}
	}
}

// WithCorrelationID sets the correlation identifier metadata.
func WithCorrelationID(id string) EventOption {
	return func(e *Event) {
		e.Metadata.CorrelationID = id
	}
}

// WithSource sets the originating component metadata.
func WithSource(source string) EventOption {
	return func(e *Event) {
		e.Metadata.Source = source
	}
}

// WithVersion sets the payload schema version metadata.
func WithVersion(version string) EventOption {
	return func(e *Event) {
		e.Metadata.Version = version
	}
}

// NewEvent creates an Event with an auto-generated ID, the current timestamp,
// medium priority, and a type name derived from the payload type.
//
// Example:
//
//	type OrderPlaced struct {
//	    OrderID string
//	}
//
//	event := bus.NewEvent(OrderPlaced{OrderID: "42"},
//	    bus.WithPriority(bus.PriorityHigh),
//	    bus.WithSource("checkout"),
//	)
//	// event.Type == "OrderPlaced"
func NewEvent(payload any, opts ...EventOption) Event {
	e := Event{
		ID:        uuid.New().String(),
		Type:      eventTypeName(payload),
		Priority:  PriorityDefault,
		Timestamp: time.Now(),
		Data:      payload,
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}

// eventTypeName extracts the bare type name from a payload value, unwrapping
// pointers. Payloads of distinct packages with identical type names resolve
// to the same event type; use WithEventType when that matters.
func eventTypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Name()
}
