package app

import "github.com/bft-labs/concordlog/internal/domain"

// EventBuffer is an ordered, append-only queue of normalized events awaiting
// transmission. Events leave the buffer only through DrainAll, all at once.
//
// EventBuffer is not safe for concurrent use; Controller serializes access.
type EventBuffer struct {
	events []domain.LogEvent
}

// NewEventBuffer creates an empty buffer.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{}
}

// Append adds an event to the tail of the buffer.
func (b *EventBuffer) Append(ev domain.LogEvent) {
	b.events = append(b.events, ev)
}

// DrainAll returns every buffered event in insertion order and leaves the
// buffer empty. The returned slice is owned by the caller; the buffer starts
// a fresh backing array so later appends never alias it. An empty buffer
// yields nil.
func (b *EventBuffer) DrainAll() []domain.LogEvent {
	if len(b.events) == 0 {
		return nil
	}
	drained := b.events
	b.events = nil
	return drained
}

// Len returns the number of pending events.
func (b *EventBuffer) Len() int {
	return len(b.events)
}
