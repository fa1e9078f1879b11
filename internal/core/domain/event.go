package domain

import (
	"time"

	"github.com/google/uuid"
)

// EnvelopeVersion tags the wire format of event envelopes so consumers can
// reject payloads they do not understand.
const EnvelopeVersion = "v1"

// Event is an immutable fact about an aggregate. Type tags and payload keys
// keep the Spanish names of the existing wire contract so both services stay
// compatible with what is already flowing through the broker.
type Event interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
	// Payload returns the flat key-value body for wire transport. UUIDs and
	// dates are serialized as strings.
	Payload() map[string]any
}

// BaseEvent carries the identity and emission timestamp shared by every
// domain event. Embed it and implement EventType/Payload.
type BaseEvent struct {
	ID string
	At time.Time
}

func NewBaseEvent() BaseEvent {
	return BaseEvent{ID: uuid.NewString(), At: time.Now()}
}

func (e BaseEvent) EventID() string {
	return e.ID
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.At
}

// Envelope is the message body published to the broker:
// {id, tipo_evento, fecha_evento, version, datos}.
type Envelope struct {
	ID         string         `json:"id"`
	EventType  string         `json:"tipo_evento"`
	OccurredAt string         `json:"fecha_evento"`
	Version    string         `json:"version"`
	Data       map[string]any `json:"datos"`
}

func NewEnvelope(event Event) Envelope {
	return Envelope{
		ID:         event.EventID(),
		EventType:  event.EventType(),
		OccurredAt: event.OccurredAt().Format(time.RFC3339Nano),
		Version:    EnvelopeVersion,
		Data:       event.Payload(),
	}
}
