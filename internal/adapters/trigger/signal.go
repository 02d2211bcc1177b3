package trigger

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Notifier subscribes a channel to OS signals. It matches os/signal.
type Notifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type osNotifier struct{}

func (osNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) { signal.Notify(c, sig...) }
func (osNotifier) Stop(c chan<- os.Signal)                     { signal.Stop(c) }

// SignalTrigger flushes whenever the process receives one of its signals.
type SignalTrigger struct {
	notifier Notifier
	signals  []os.Signal

	mu   sync.Mutex
	ch   chan os.Signal
	done chan struct{}
	wg   sync.WaitGroup
}

// NewSignalTrigger creates a trigger for the given signals, SIGHUP if none.
func NewSignalTrigger(sig ...os.Signal) *SignalTrigger {
	return NewSignalTriggerWithNotifier(osNotifier{}, sig...)
}

// NewSignalTriggerWithNotifier creates a trigger backed by n.
func NewSignalTriggerWithNotifier(n Notifier, sig ...os.Signal) *SignalTrigger {
	if len(sig) == 0 {
		sig = []os.Signal{syscall.SIGHUP}
	}
	return &SignalTrigger{notifier: n, signals: sig}
}

// Name implements ports.FlushTrigger.
func (t *SignalTrigger) Name() string { return "signal" }

// Arm implements ports.FlushTrigger.
func (t *SignalTrigger) Arm(flush func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ch != nil {
		return
	}

	t.ch = make(chan os.Signal, 1)
	t.done = make(chan struct{})
	t.notifier.Notify(t.ch, t.signals...)

	ch, done := t.ch, t.done
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		for {
			select {
			case <-ch:
				flush()
			case <-done:
				return
			}
		}
	}()
}

// Disarm implements ports.FlushTrigger.
func (t *SignalTrigger) Disarm() {
	t.mu.Lock()
	if t.ch == nil {
		t.mu.Unlock()
		return
	}
	t.notifier.Stop(t.ch)
	close(t.done)
	t.ch, t.done = nil, nil
	t.mu.Unlock()

	t.wg.Wait()
}
