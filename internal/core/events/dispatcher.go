// Package events holds the in-process event dispatcher that fans domain
// events out to local handlers and to the registered external publishers
// (the broker bridge). Publication is fire-and-forget: a failure here never
// reaches the aggregate that emitted the event.
package events

import (
	"context"

	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/logger"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// Publisher moves a domain event across the service boundary. Implementations
// are best-effort; the dispatcher logs and swallows their failures.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Handler reacts to an event inside this process.
type Handler func(ctx context.Context, event domain.Event) error

type Dispatcher struct {
	handlers   map[string][]Handler
	publishers []Publisher
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// RegisterHandler and RegisterPublisher are startup-time wiring calls; the
// dispatcher is immutable once the services start serving.

func (d *Dispatcher) RegisterHandler(eventType string, handler Handler) {
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

func (d *Dispatcher) RegisterPublisher(publisher Publisher) {
	d.publishers = append(d.publishers, publisher)
}

// Dispatch invokes every local handler and every publisher with the event.
// Failures are logged per registration and never propagate: one failing
// publisher does not prevent the others from receiving the event.
func (d *Dispatcher) Dispatch(ctx context.Context, event domain.Event) {
	attrs := map[string]any{
		"event_id":   event.EventID(),
		"event_type": event.EventType(),
	}

	for _, handler := range d.handlers[event.EventType()] {
		if err := handler(ctx, event); err != nil {
			logger.Error(ctx, "event handler failed", err, attrs)
		}
	}

	for _, publisher := range d.publishers {
		if err := publisher.Publish(ctx, event); err != nil {
			logger.Error(ctx, "event publish failed, event lost in transit", err, attrs)
		}
	}
}

// DispatchAll drains a batch of pending aggregate events.
func (d *Dispatcher) DispatchAll(ctx context.Context, events []domain.Event) {
	for _, event := range events {
		d.Dispatch(ctx, event)
	}
}
