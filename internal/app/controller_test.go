package app

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/internal/ports"
)

var testEvent = domain.CloudEvent{
	Type:          "testType",
	Name:          "testName",
	ProjectNumber: "1234567890",
	Latency:       123,
	Metadata: []any{
		domain.KeyValue{Key: "test1", Value: "data1"},
	},
	UserSessionID: "ABCDEFG",
}

type controllerHarness struct {
	controller  *Controller
	transmitter *recordingTransmitter
	tickers     *tickerFactory
	observer    *recordingObserver
}

func newHarness(triggers ...ports.FlushTrigger) *controllerHarness {
	h := &controllerHarness{
		transmitter: &recordingTransmitter{},
		tickers:     &tickerFactory{},
		observer:    &recordingObserver{},
	}
	h.controller = NewController(ControllerConfig{
		ConsoleType: "TEST",
		ClientInfo: domain.ClientInfo{
			ClientType:   domain.ClientTypeJS,
			JSClientInfo: &domain.JSClientInfo{DeviceType: domain.DeviceTypeDesktop},
		},
	}, h.transmitter, triggers, nil, h.observer)
	h.controller.newTicker = h.tickers.New
	h.controller.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return h
}

func namedEvent(name string) domain.CloudEvent {
	return domain.CloudEvent{Type: "testType", Name: name}
}

func eventNames(t *testing.T, batch *domain.OutboundBatch) []string {
	t.Helper()
	names := make([]string, 0, len(batch.LogEvent))
	for _, le := range batch.LogEvent {
		var ce domain.ConcordEvent
		require.NoError(t, json.Unmarshal([]byte(le.SourceExtensionJSON), &ce))
		names = append(names, ce.EventName)
	}
	return names
}

func TestController_ImmediateModeSendsOneBatchPerEvent(t *testing.T) {
	h := newHarness()

	for i := 0; i < 5; i++ {
		h.controller.LogEvent(namedEvent(fmt.Sprintf("e%d", i)))
	}

	batches := h.transmitter.Batches()
	require.Len(t, batches, 5)
	for i, b := range batches {
		assert.Equal(t, []string{fmt.Sprintf("e%d", i)}, eventNames(t, b))
	}
	assert.Equal(t, ModeImmediate, h.controller.Mode())
	assert.Equal(t, 0, h.controller.Pending())
}

func TestController_BatchedModeWaitsForFlush(t *testing.T) {
	h := newHarness()
	h.controller.EnableBatchMode(0)

	h.controller.LogEvent(namedEvent("A"))
	h.controller.LogEvent(namedEvent("B"))
	h.controller.LogSurveyResponse(domain.SurveyResponse{ProjectNumber: "1"})

	assert.Empty(t, h.transmitter.Batches())
	assert.Equal(t, 3, h.controller.Pending())

	h.controller.Flush()

	batches := h.transmitter.Batches()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"A", "B", domain.SurveyEventName}, eventNames(t, batches[0]))
	assert.Equal(t, []string{ReasonManual}, h.observer.Reasons())
}

func TestController_EmptyFlushSendsNothing(t *testing.T) {
	h := newHarness()

	h.controller.Flush()
	h.controller.EnableBatchMode(0)
	h.controller.Flush()
	h.controller.StopBatching()

	assert.Empty(t, h.transmitter.Batches())
	assert.Empty(t, h.observer.Reasons())
}

func TestController_EnableBatchModeClamps(t *testing.T) {
	tests := []struct {
		requested time.Duration
		want      time.Duration
	}{
		{500 * time.Millisecond, time.Second},
		{120 * time.Second, time.Minute},
		{0, 10 * time.Second},
	}

	for _, tt := range tests {
		h := newHarness()
		h.controller.EnableBatchMode(tt.requested)
		assert.Equal(t, tt.want, h.controller.FlushInterval(), "requested %v", tt.requested)
		assert.Equal(t, ModeBatched, h.controller.Mode())
	}
}

func TestController_EnableBatchModeAgainKeepsRunningTimer(t *testing.T) {
	h := newHarness()
	h.controller.EnableBatchMode(5 * time.Second)
	h.controller.StartBatching()

	h.controller.EnableBatchMode(20 * time.Second)

	tickers := h.tickers.Tickers()
	require.Len(t, tickers, 1)
	assert.Equal(t, 5*time.Second, tickers[0].period)
	assert.False(t, tickers[0].Stopped())
	assert.Equal(t, 20*time.Second, h.controller.FlushInterval())
	assert.Equal(t, ModeBatched, h.controller.Mode())

	h.controller.StopBatching()
}

func TestController_StopBatchingFlushesPending(t *testing.T) {
	trigger := &fakeTrigger{name: "sighup"}
	h := newHarness(trigger)
	h.controller.EnableBatchMode(time.Second)
	h.controller.StartBatching()

	h.controller.LogEvent(namedEvent("A"))
	h.controller.LogEvent(namedEvent("B"))
	require.Empty(t, h.transmitter.Batches())

	h.controller.StopBatching()

	batches := h.transmitter.Batches()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"A", "B"}, eventNames(t, batches[0]))
	assert.Equal(t, []string{ReasonStop}, h.observer.Reasons())

	tickers := h.tickers.Tickers()
	require.Len(t, tickers, 1)
	assert.True(t, tickers[0].Stopped())
}

func TestController_StartBatchingIsIdempotent(t *testing.T) {
	trigger := &fakeTrigger{name: "sighup"}
	h := newHarness(trigger)
	h.controller.EnableBatchMode(time.Second)

	h.controller.StartBatching()
	h.controller.StartBatching()

	arms, disarms := trigger.Counts()
	assert.Equal(t, 1, arms)
	assert.Equal(t, 0, disarms)
	assert.Len(t, h.tickers.Tickers(), 1)

	h.controller.StopBatching()
	h.controller.StopBatching()

	arms, disarms = trigger.Counts()
	assert.Equal(t, 1, arms)
	assert.Equal(t, 1, disarms)
}

func TestController_StartBatchingRequiresBatchMode(t *testing.T) {
	trigger := &fakeTrigger{name: "sighup"}
	h := newHarness(trigger)

	h.controller.StartBatching()

	arms, _ := trigger.Counts()
	assert.Equal(t, 0, arms)
	assert.Empty(t, h.tickers.Tickers())
}

func TestController_StartAfterStopRearms(t *testing.T) {
	trigger := &fakeTrigger{name: "sighup"}
	h := newHarness(trigger)
	h.controller.EnableBatchMode(time.Second)

	h.controller.StartBatching()
	h.controller.StopBatching()
	h.controller.StartBatching()

	arms, disarms := trigger.Counts()
	assert.Equal(t, 2, arms)
	assert.Equal(t, 1, disarms)
	assert.Len(t, h.tickers.Tickers(), 2)

	h.controller.StopBatching()
}

func TestController_TimerTickFlushes(t *testing.T) {
	h := newHarness()
	h.controller.EnableBatchMode(time.Second)
	h.controller.StartBatching()
	defer h.controller.StopBatching()

	h.controller.LogEvent(namedEvent("A"))
	tickers := h.tickers.Tickers()
	require.Len(t, tickers, 1)

	tickers[0].ch <- time.Now()

	require.Eventually(t, func() bool {
		return len(h.observer.Reasons()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"A"}, eventNames(t, h.transmitter.Batches()[0]))
	assert.Equal(t, []string{ReasonTimer}, h.observer.Reasons())
}

func TestController_TriggerFiresFlush(t *testing.T) {
	trigger := &fakeTrigger{name: "sighup"}
	h := newHarness(trigger)
	h.controller.EnableBatchMode(time.Second)
	h.controller.StartBatching()
	defer h.controller.StopBatching()

	h.controller.LogEvent(namedEvent("A"))
	trigger.Fire()

	require.Len(t, h.transmitter.Batches(), 1)
	assert.Equal(t, []string{"sighup"}, h.observer.Reasons())

	trigger.Fire()
	assert.Len(t, h.transmitter.Batches(), 1, "empty buffer must not produce a batch")
}

func TestController_ImmediateModeDrainsEarlierPending(t *testing.T) {
	h := newHarness()
	h.controller.buffer.Append(domain.LogEvent{EventTimeMs: 1, SourceExtensionJSON: `{"event_name":"stale"}`})

	h.controller.LogEvent(namedEvent("fresh"))

	batches := h.transmitter.Batches()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"stale", "fresh"}, eventNames(t, batches[0]))
}

func TestController_EndToEndBatch(t *testing.T) {
	h := newHarness()

	h.controller.LogEvent(testEvent)

	batches := h.transmitter.Batches()
	require.Len(t, batches, 1)
	b := batches[0]

	assert.Equal(t, "CONCORD", b.LogSourceName)
	assert.Equal(t, int64(1700000000000), b.RequestTimeMs)
	assert.Equal(t, domain.ClientTypeJS, b.ClientInfo.ClientType)
	require.NotNil(t, b.ClientInfo.JSClientInfo)
	assert.Equal(t, domain.DeviceTypeDesktop, b.ClientInfo.JSClientInfo.DeviceType)

	require.Len(t, b.LogEvent, 1)
	assert.Equal(t, int64(1700000000000), b.LogEvent[0].EventTimeMs)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(b.LogEvent[0].SourceExtensionJSON), &decoded))
	assert.Equal(t, map[string]any{
		"console_type":      "TEST",
		"event_type":        "testType",
		"event_name":        "testName",
		"event_metadata":    []any{map[string]any{"key": "test1", "value": "data1"}},
		"project_number":    "1234567890",
		"latency_ms":        float64(123),
		"browser_window_id": "ABCDEFG",
	}, decoded)
}

func TestController_UnserializableEventDropped(t *testing.T) {
	h := newHarness()

	h.controller.LogEvent(domain.CloudEvent{Type: "t", Name: "bad", Metadata: []any{make(chan int)}})
	h.controller.LogEvent(namedEvent("good"))

	batches := h.transmitter.Batches()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"good"}, eventNames(t, batches[0]))
}

func TestController_ConcurrentLoggingDeliversEachEventOnce(t *testing.T) {
	trigger := &fakeTrigger{name: "sighup"}
	h := newHarness(trigger)
	h.controller.EnableBatchMode(time.Second)
	h.controller.StartBatching()

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				h.controller.LogEvent(namedEvent(fmt.Sprintf("w%d-%d", w, i)))
				if i%10 == 0 {
					trigger.Fire()
				}
			}
		}(w)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			h.controller.Flush()
		}
	}()
	wg.Wait()
	h.controller.StopBatching()

	seen := map[string]int{}
	lastIndex := map[int]int{}
	for _, b := range h.transmitter.Batches() {
		assert.NotEmpty(t, b.LogEvent)
		for _, name := range eventNames(t, b) {
			seen[name]++
			var w, i int
			_, err := fmt.Sscanf(name, "w%d-%d", &w, &i)
			require.NoError(t, err)
			if prev, ok := lastIndex[w]; ok {
				assert.Greater(t, i, prev, "events from one writer must stay in order")
			}
			lastIndex[w] = i
		}
	}
	assert.Len(t, seen, writers*perWriter)
	for name, n := range seen {
		assert.Equal(t, 1, n, "event %s delivered %d times", name, n)
	}
}
