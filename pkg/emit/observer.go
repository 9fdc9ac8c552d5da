package emit

import (
	"time"

	"github.com/go-logr/logr"
)

// Observer receives structured events while a spec is emitted.
type Observer interface {
	// Event emits a structured event
	Event(event Event)
}

// Event represents a structured emission event. Events never carry field
// values, only resource names and kinds, so sensitive descriptors stay out
// of logs.
type Event struct {
	Type      EventType // Type of event
	Resource  string    // Resource name if applicable
	Kind      string    // Resource kind if applicable
	Message   string    // Human-readable message
	Timestamp time.Time // When the event occurred
}

// EventType represents the type of emission event.
type EventType string

const (
	// EventResourceRendered indicates a descriptor was rendered to a manifest.
	EventResourceRendered EventType = "resource.rendered"
	// EventEmitCompleted indicates the whole spec was emitted successfully.
	EventEmitCompleted EventType = "emit.completed"
	// EventEmitFailed indicates emission failed; nothing was written completely.
	EventEmitFailed EventType = "emit.failed"
)

// LogrObserver implements Observer on top of a logr.Logger.
type LogrObserver struct {
	log logr.Logger
}

// NewLogrObserver creates an observer that logs every event.
func NewLogrObserver(log logr.Logger) *LogrObserver {
	return &LogrObserver{log: log}
}

// Event implements Observer.
func (o *LogrObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	kvs := []any{"type", string(event.Type)}
	if event.Resource != "" {
		kvs = append(kvs, "resource", event.Resource, "kind", event.Kind)
	}

	if event.Type == EventEmitFailed {
		o.log.Error(nil, event.Message, kvs...)
		return
	}
	o.log.Info(event.Message, kvs...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

// Event implements Observer.
func (NoopObserver) Event(Event) {}
