// Package dispatch provides the type-based single-dispatch routers that bind
// a command, query or event value to exactly one handler. Registration is an
// explicit startup-time call on an owned bus instance; there is no package
// global and no init()-side-effect wiring, so "was the handler registered"
// is never a question of import order.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrNoHandler is returned when a message's concrete type was never bound.
// Callers treat this as a fatal wiring error, never as a silent no-op.
var ErrNoHandler = errors.New("no handler registered")

type HandlerFunc func(ctx context.Context, msg any) (any, error)

type bus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]HandlerFunc
}

func newBus() bus {
	return bus{handlers: make(map[reflect.Type]HandlerFunc)}
}

// bind maps the concrete type of msg to handler. Binding the same type again
// replaces the previous handler, so repeated wiring calls are idempotent.
func (b *bus) bind(msg any, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[reflect.TypeOf(msg)] = handler
}

func (b *bus) execute(ctx context.Context, msg any) (any, error) {
	b.mu.RLock()
	handler, ok := b.handlers[reflect.TypeOf(msg)]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w for type %T", ErrNoHandler, msg)
	}
	return handler(ctx, msg)
}

// CommandBus routes commands. Exactly one handler per concrete command type.
type CommandBus struct {
	bus
}

func NewCommandBus() *CommandBus {
	return &CommandBus{bus: newBus()}
}

func (b *CommandBus) Bind(cmd any, handler HandlerFunc) {
	b.bind(cmd, handler)
}

func (b *CommandBus) Execute(ctx context.Context, cmd any) (any, error) {
	return b.execute(ctx, cmd)
}

// QueryBus routes queries. Query handlers never mutate state.
type QueryBus struct {
	bus
}

func NewQueryBus() *QueryBus {
	return &QueryBus{bus: newBus()}
}

func (b *QueryBus) Bind(query any, handler HandlerFunc) {
	b.bind(query, handler)
}

func (b *QueryBus) Execute(ctx context.Context, query any) (any, error) {
	return b.execute(ctx, query)
}

// EventBus routes locally-applied events: the pub/sub consumer re-enters the
// command pipeline through it, keyed by event type. It shares the
// request-serving path, so Execute is safe for concurrent use.
type EventBus struct {
	bus
}

func NewEventBus() *EventBus {
	return &EventBus{bus: newBus()}
}

func (b *EventBus) Bind(event any, handler HandlerFunc) {
	b.bind(event, handler)
}

func (b *EventBus) Execute(ctx context.Context, event any) (any, error) {
	return b.execute(ctx, event)
}

// Handle adapts a typed handler to a HandlerFunc. The type assertion cannot
// fail for messages dispatched through the bus, since the bus keys on the
// same concrete type.
func Handle[T any](handler func(ctx context.Context, msg T) (any, error)) HandlerFunc {
	return func(ctx context.Context, msg any) (any, error) {
		typed, ok := msg.(T)
		if !ok {
			return nil, fmt.Errorf("%w: handler for %T received %T", ErrNoHandler, *new(T), msg)
		}
		return handler(ctx, typed)
	}
}
