package trigger

import (
	"context"
	"sync"
)

// ExitTrigger flushes once when its context is cancelled, typically the
// process shutdown context. It plays the part a page-unload hook plays
// in a browser host.
type ExitTrigger struct {
	ctx context.Context

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewExitTrigger creates a trigger bound to ctx.
func NewExitTrigger(ctx context.Context) *ExitTrigger {
	return &ExitTrigger{ctx: ctx}
}

// Name implements ports.FlushTrigger.
func (t *ExitTrigger) Name() string { return "exit" }

// Arm implements ports.FlushTrigger.
func (t *ExitTrigger) Arm(flush func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}

	stop := make(chan struct{})
	t.stop = stop
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		select {
		case <-t.ctx.Done():
			flush()
		case <-stop:
		}
	}()
}

// Disarm implements ports.FlushTrigger.
func (t *ExitTrigger) Disarm() {
	t.mu.Lock()
	if t.stop == nil {
		t.mu.Unlock()
		return
	}
	close(t.stop)
	t.stop = nil
	t.mu.Unlock()

	t.wg.Wait()
}
