package event

import "log"

// Handler receives the payload published with an event.
type Handler func(payload any)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous publish/subscribe dispatcher. Handlers run in
// subscription order on the publisher's goroutine; the client is
// single-threaded (one bubbletea event loop), so no locking is needed.
type Bus struct {
	logger *log.Logger
	nextID uint64
	subs   map[Event][]subscription
}

// NewBus creates an empty bus. Handlers are registered explicitly via
// Subscribe; there is no global instance.
func NewBus(logger *log.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[Event][]subscription),
	}
}

// Subscribe registers a handler for name and returns a function that
// removes it. Subscribing to an event outside the taxonomy logs a
// warning and returns a no-op unsubscribe.
func (b *Bus) Subscribe(name Event, h Handler) func() {
	if !Valid(name) {
		b.logger.Printf("[WARN] event: subscribe to unknown event %q ignored", name)
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs[name] = append(b.subs[name], subscription{id: id, handler: h})
	return func() {
		kept := b.subs[name][:0]
		for _, s := range b.subs[name] {
			if s.id != id {
				kept = append(kept, s)
			}
		}
		b.subs[name] = kept
	}
}

// Publish delivers payload to every handler subscribed to name, in
// subscription order. Unknown events are dropped with a warning.
func (b *Bus) Publish(name Event, payload any) {
	if !Valid(name) {
		b.logger.Printf("[WARN] event: publish of unknown event %q dropped", name)
		return
	}
	// Copy so a handler that unsubscribes mid-dispatch doesn't skip others.
	current := make([]subscription, len(b.subs[name]))
	copy(current, b.subs[name])
	for _, s := range current {
		s.handler(payload)
	}
}

// SubscriberCount returns the number of handlers registered for name.
func (b *Bus) SubscriberCount(name Event) int {
	return len(b.subs[name])
}
