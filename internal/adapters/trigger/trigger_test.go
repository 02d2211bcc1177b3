package trigger

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/concordlog/internal/ports"
)

var (
	_ ports.FlushTrigger = (*SignalTrigger)(nil)
	_ ports.FlushTrigger = (*ExitTrigger)(nil)
	_ ports.FlushTrigger = (*HookTrigger)(nil)
	_ EventTarget        = (*Hooks)(nil)
)

type stubNotifier struct {
	mu       sync.Mutex
	notifies int
	stops    int
	ch       chan<- os.Signal
	sigs     []os.Signal
}

func (n *stubNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifies++
	n.ch = c
	n.sigs = sig
}

func (n *stubNotifier) Stop(c chan<- os.Signal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stops++
	n.ch = nil
}

func (n *stubNotifier) deliver(sig os.Signal) {
	n.mu.Lock()
	ch := n.ch
	n.mu.Unlock()
	ch <- sig
}

func TestSignalTrigger_DefaultsToSIGHUP(t *testing.T) {
	n := &stubNotifier{}
	tr := NewSignalTriggerWithNotifier(n)
	tr.Arm(func() {})
	defer tr.Disarm()

	assert.Equal(t, []os.Signal{syscall.SIGHUP}, n.sigs)
	assert.Equal(t, "signal", tr.Name())
}

func TestSignalTrigger_FiresFlush(t *testing.T) {
	n := &stubNotifier{}
	tr := NewSignalTriggerWithNotifier(n, syscall.SIGUSR1)

	var fired atomic.Int32
	tr.Arm(func() { fired.Add(1) })

	n.deliver(syscall.SIGUSR1)
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)

	tr.Disarm()
	assert.Equal(t, 1, n.stops)
}

func TestSignalTrigger_ArmDisarmIdempotent(t *testing.T) {
	n := &stubNotifier{}
	tr := NewSignalTriggerWithNotifier(n)

	tr.Arm(func() {})
	tr.Arm(func() {})
	assert.Equal(t, 1, n.notifies)

	tr.Disarm()
	tr.Disarm()
	assert.Equal(t, 1, n.stops)

	tr.Arm(func() {})
	tr.Disarm()
	assert.Equal(t, 2, n.notifies)
	assert.Equal(t, 2, n.stops)
}

func TestExitTrigger_FiresOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tr := NewExitTrigger(ctx)

	var fired atomic.Int32
	tr.Arm(func() { fired.Add(1) })
	tr.Arm(func() { fired.Add(1) })

	cancel()
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)

	tr.Disarm()
	assert.Equal(t, int32(1), fired.Load())
}

func TestExitTrigger_DisarmPreventsFlush(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tr := NewExitTrigger(ctx)

	var fired atomic.Int32
	tr.Arm(func() { fired.Add(1) })
	tr.Disarm()
	tr.Disarm()

	cancel()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

type countingTarget struct {
	*Hooks
	adds    int
	removes int
}

func (c *countingTarget) AddListener(event string, fn func()) ListenerID {
	c.adds++
	return c.Hooks.AddListener(event, fn)
}

func (c *countingTarget) RemoveListener(id ListenerID) {
	c.removes++
	c.Hooks.RemoveListener(id)
}

func TestHookTrigger_RegistersBothEvents(t *testing.T) {
	target := &countingTarget{Hooks: NewHooks()}
	tr := NewHookTrigger(target)

	var fired int
	tr.Arm(func() { fired++ })
	tr.Arm(func() { fired++ })
	require.Equal(t, 2, target.adds)

	target.Emit(EventBeforeUnload)
	target.Emit(EventUnload)
	target.Emit("visibilitychange")
	assert.Equal(t, 2, fired)

	tr.Disarm()
	tr.Disarm()
	assert.Equal(t, 2, target.removes)
	assert.Equal(t, 0, target.Len())

	target.Emit(EventUnload)
	assert.Equal(t, 2, fired)
}

func TestHooks_EmitOrder(t *testing.T) {
	h := NewHooks()
	var order []int
	h.AddListener(EventUnload, func() { order = append(order, 1) })
	id := h.AddListener(EventUnload, func() { order = append(order, 2) })
	h.AddListener(EventUnload, func() { order = append(order, 3) })
	h.RemoveListener(id)
	h.RemoveListener(999)

	h.Emit(EventUnload)
	assert.Equal(t, []int{1, 3}, order)
}
