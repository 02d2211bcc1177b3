package trigger

import (
	"sort"
	"sync"
)

// Host lifecycle events a HookTrigger listens for.
const (
	EventBeforeUnload = "beforeunload"
	EventUnload       = "unload"
)

// ListenerID identifies a registered listener.
type ListenerID uint64

// EventTarget is a host that dispatches named lifecycle events.
type EventTarget interface {
	AddListener(event string, fn func()) ListenerID
	RemoveListener(id ListenerID)
}

// Hooks is an in-process EventTarget. Embedders call Emit from their own
// shutdown path.
type Hooks struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners map[ListenerID]hookListener
}

type hookListener struct {
	event string
	fn    func()
}

// NewHooks creates an empty registry.
func NewHooks() *Hooks {
	return &Hooks{listeners: make(map[ListenerID]hookListener)}
}

// AddListener implements EventTarget.
func (h *Hooks) AddListener(event string, fn func()) ListenerID {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.listeners[h.nextID] = hookListener{event: event, fn: fn}
	return h.nextID
}

// RemoveListener implements EventTarget. Unknown ids are ignored.
func (h *Hooks) RemoveListener(id ListenerID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, id)
}

// Emit runs every listener registered for event, in registration order.
// Listeners run on the caller's goroutine without the registry lock held.
func (h *Hooks) Emit(event string) {
	h.mu.Lock()
	ids := make([]ListenerID, 0, len(h.listeners))
	for id, l := range h.listeners {
		if l.event == event {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, h.listeners[id].fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of registered listeners.
func (h *Hooks) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// HookTrigger flushes on the host's beforeunload and unload events.
type HookTrigger struct {
	target EventTarget

	mu  sync.Mutex
	ids []ListenerID
}

// NewHookTrigger creates a trigger bound to target.
func NewHookTrigger(target EventTarget) *HookTrigger {
	return &HookTrigger{target: target}
}

// Name implements ports.FlushTrigger.
func (t *HookTrigger) Name() string { return "hook" }

// Arm implements ports.FlushTrigger.
func (t *HookTrigger) Arm(flush func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ids != nil {
		return
	}
	t.ids = []ListenerID{
		t.target.AddListener(EventBeforeUnload, flush),
		t.target.AddListener(EventUnload, flush),
	}
}

// Disarm implements ports.FlushTrigger.
func (t *HookTrigger) Disarm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range t.ids {
		t.target.RemoveListener(id)
	}
	t.ids = nil
}
