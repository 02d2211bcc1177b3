package app

import (
	"sync"
	"time"

	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/internal/ports"
	"github.com/bft-labs/concordlog/pkg/log"
)

// ControllerConfig contains the static configuration of a Controller.
type ControllerConfig struct {
	// ConsoleType is stamped on every event (wire: console_type).
	ConsoleType string

	// ClientInfo is attached to every outbound batch.
	ClientInfo domain.ClientInfo
}

// Ticker is the recurring timer driving batched flushes.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Controller owns the event buffer and decides when buffered events are
// flushed to the transmitter.
//
// A Controller starts in ModeImmediate, where every logged event is flushed
// right away. EnableBatchMode switches it to ModeBatched for the rest of its
// life; batched events wait for the flush timer, a FlushTrigger, a manual
// Flush or StopBatching. Every path ends in the same flush, which drains the
// whole buffer into one batch, so no event is handed off twice.
type Controller struct {
	consoleType string
	clientInfo  domain.FirelogClientInfo
	transmitter ports.Transmitter
	triggers    []ports.FlushTrigger
	logger      log.Logger
	observer    ports.FlushObserver

	now       func() time.Time
	newTicker func(time.Duration) Ticker

	// mu serializes buffer access, mode changes and batch hand-off.
	mu            sync.Mutex
	buffer        *EventBuffer
	mode          Mode
	flushInterval time.Duration

	// lifecycleMu serializes StartBatching and StopBatching.
	lifecycleMu sync.Mutex
	armed       bool
	tickerStop  chan struct{}
	tickerDone  chan struct{}
}

// NewController creates a controller in ModeImmediate.
// logger and observer may be nil.
func NewController(
	config ControllerConfig,
	transmitter ports.Transmitter,
	triggers []ports.FlushTrigger,
	logger log.Logger,
	observer ports.FlushObserver,
) *Controller {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Controller{
		consoleType:   config.ConsoleType,
		clientInfo:    FirelogClientInfo(config.ClientInfo),
		transmitter:   transmitter,
		triggers:      triggers,
		logger:        logger,
		observer:      observer,
		now:           time.Now,
		newTicker:     newTimeTicker,
		buffer:        NewEventBuffer(),
		mode:          ModeImmediate,
		flushInterval: DefaultFlushInterval,
	}
}

// EnableBatchMode switches the controller to ModeBatched with the given
// flush interval, clamped to [MinFlushInterval, MaxFlushInterval]. A
// non-positive interval selects DefaultFlushInterval.
//
// Calling it again only records the new interval; a flush timer that is
// already running keeps its period until batching is restarted.
func (c *Controller) EnableBatchMode(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.flushInterval = ClampFlushInterval(interval)
	c.mode = ModeBatched
	c.logger.Info("batch mode enabled", log.Duration("flush_interval", c.flushInterval))
}

// StartBatching arms the flush timer and every flush trigger.
// It does nothing outside ModeBatched or when batching is already started.
func (c *Controller) StartBatching() {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	c.mu.Lock()
	mode, interval := c.mode, c.flushInterval
	c.mu.Unlock()

	if mode != ModeBatched || c.armed {
		return
	}
	c.armed = true

	c.tickerStop = make(chan struct{})
	c.tickerDone = make(chan struct{})
	go c.runTicker(c.newTicker(interval), c.tickerStop, c.tickerDone)

	for _, t := range c.triggers {
		name := t.Name()
		t.Arm(func() { c.flush(name) })
	}

	c.logger.Info("batching started",
		log.Duration("flush_interval", interval),
		log.Int("triggers", len(c.triggers)),
	)
}

// StopBatching disarms the flush timer and every flush trigger, then
// flushes whatever is still pending. It is safe to call in any mode and
// more than once.
func (c *Controller) StopBatching() {
	c.lifecycleMu.Lock()
	if c.armed {
		close(c.tickerStop)
		<-c.tickerDone
		c.tickerStop, c.tickerDone = nil, nil

		for _, t := range c.triggers {
			t.Disarm()
		}
		c.armed = false
		c.logger.Info("batching stopped")
	}
	c.lifecycleMu.Unlock()

	c.flush(ReasonStop)
}

// Flush sends every pending event now, in either mode.
func (c *Controller) Flush() {
	c.flush(ReasonManual)
}

// LogEvent logs an application event.
func (c *Controller) LogEvent(ev domain.CloudEvent) {
	c.pushEvent(ConcordEventFromCloudEvent(c.consoleType, ev))
}

// LogSurveyResponse logs a survey response.
func (c *Controller) LogSurveyResponse(sr domain.SurveyResponse) {
	c.pushEvent(ConcordEventFromSurvey(c.consoleType, sr))
}

// Mode returns the current flush mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// FlushInterval returns the effective flush interval.
func (c *Controller) FlushInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushInterval
}

// Pending returns the number of buffered events.
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Len()
}

func (c *Controller) pushEvent(ev domain.ConcordEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	le, err := normalize(ev, c.now().UnixMilli())
	if err != nil {
		c.logger.Warn("dropping event that cannot be serialized",
			log.String("event_type", ev.EventType),
			log.String("event_name", ev.EventName),
			log.Err(err),
		)
		return
	}
	c.buffer.Append(le)

	if c.mode == ModeImmediate {
		c.flushLocked(ReasonEvent)
	}
}

func (c *Controller) flush(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushLocked(reason)
}

// flushLocked drains the buffer into one batch and hands it to the
// transmitter. c.mu must be held, which keeps hand-off in flush order.
func (c *Controller) flushLocked(reason string) {
	events := c.buffer.DrainAll()
	if len(events) == 0 {
		return
	}

	batch := &domain.OutboundBatch{
		ClientInfo:    c.clientInfo,
		LogSourceName: domain.LogSource,
		RequestTimeMs: c.now().UnixMilli(),
		LogEvent:      events,
	}
	c.transmitter.Send(batch)

	c.logger.Debug("flushed events",
		log.String("reason", reason),
		log.Int("events", len(events)),
	)
	if c.observer != nil {
		c.observer.OnFlush(reason, len(events))
	}
}

func (c *Controller) runTicker(t Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C():
			c.flush(ReasonTimer)
		}
	}
}
