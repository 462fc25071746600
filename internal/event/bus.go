// Package event provides a small synchronous in-process event bus with a
// bounded log of recent events.
package event

import (
	"context"
	"sync"
	"time"
)

// Type names a domain event.
type Type string

const (
	// TypeOrderPlaced fires after an order has been priced and persisted.
	TypeOrderPlaced Type = "ORDER_PLACED"
	// TypeNotificationSent fires after a notification dispatch attempt.
	TypeNotificationSent Type = "NOTIFICATION_SENT"
)

// Event is a recorded occurrence with free-form payload data.
type Event struct {
	Type Type
	At   time.Time
	Data map[string]any
}

// Handler reacts to a published event. Handlers run synchronously on the
// publisher's goroutine; publishers do not depend on handler outcomes.
type Handler func(ctx context.Context, e Event)

// maxLog bounds the in-memory event log.
const maxLog = 1000

// Bus dispatches events to subscribers registered per event type and keeps
// the most recent events in memory.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	log      []Event
	now      func() time.Time
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
		now:      time.Now,
	}
}

// Subscribe registers a handler for the given event type.
func (b *Bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish records the event and invokes all handlers subscribed to its type,
// in registration order.
func (b *Bus) Publish(ctx context.Context, t Type, data map[string]any) {
	e := Event{Type: t, At: b.now(), Data: data}

	b.mu.Lock()
	b.log = append(b.log, e)
	if len(b.log) > maxLog {
		b.log = b.log[len(b.log)-maxLog:]
	}
	handlers := make([]Handler, len(b.handlers[t]))
	copy(handlers, b.handlers[t])
	b.mu.Unlock()

	for _, h := range handlers {
		h(ctx, e)
	}
}

// Recent returns a snapshot of the logged events, oldest first.
func (b *Bus) Recent() []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Event, len(b.log))
	copy(out, b.log)
	return out
}
