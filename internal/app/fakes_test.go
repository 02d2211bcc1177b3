package app

import (
	"sync"
	"time"

	"github.com/bft-labs/concordlog/internal/domain"
)

// recordingTransmitter captures every batch handed to it.
type recordingTransmitter struct {
	mu      sync.Mutex
	batches []*domain.OutboundBatch
}

func (r *recordingTransmitter) Send(batch *domain.OutboundBatch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, batch)
}

func (r *recordingTransmitter) Batches() []*domain.OutboundBatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.OutboundBatch{}, r.batches...)
}

// fakeTrigger counts arm/disarm calls and can be fired by tests.
type fakeTrigger struct {
	name string

	mu       sync.Mutex
	arms     int
	disarms  int
	callback func()
}

func (f *fakeTrigger) Name() string { return f.name }

func (f *fakeTrigger) Arm(flush func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.arms++
	f.callback = flush
}

func (f *fakeTrigger) Disarm() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disarms++
	f.callback = nil
}

func (f *fakeTrigger) Fire() {
	f.mu.Lock()
	cb := f.callback
	f.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (f *fakeTrigger) Counts() (arms, disarms int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.arms, f.disarms
}

// manualTicker is a Ticker driven by the test.
type manualTicker struct {
	ch chan time.Time

	mu      sync.Mutex
	period  time.Duration
	stopped bool
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }

func (m *manualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *manualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// tickerFactory hands out manualTickers and remembers them.
type tickerFactory struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (f *tickerFactory) New(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &manualTicker{ch: make(chan time.Time), period: d}
	f.tickers = append(f.tickers, t)
	return t
}

func (f *tickerFactory) Tickers() []*manualTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*manualTicker{}, f.tickers...)
}

// recordingObserver captures flush notifications.
type recordingObserver struct {
	mu      sync.Mutex
	reasons []string
	counts  []int
}

func (o *recordingObserver) OnFlush(reason string, eventCount int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reasons = append(o.reasons, reason)
	o.counts = append(o.counts, eventCount)
}

func (o *recordingObserver) Reasons() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string{}, o.reasons...)
}
