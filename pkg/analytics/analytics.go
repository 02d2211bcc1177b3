package analytics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/bft-labs/concordlog/internal/adapters/http"
	"github.com/bft-labs/concordlog/internal/app"
)

// CloudAnalytics logs events and survey responses to the Concord endpoint.
// It is safe for concurrent use.
type CloudAnalytics struct {
	controller *app.Controller
	http       *httpAdapter.Transmitter
}

// New creates a client in immediate mode for the given console type.
// apiKey may be empty only when WithTransmitter supplies the transport.
func New(consoleType, apiKey string, opts ...Option) (*CloudAnalytics, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if consoleType == "" {
		return nil, fmt.Errorf("%w: console type is required", ErrInvalidConfig)
	}

	a := &CloudAnalytics{}

	transmitter := o.transmitter
	if transmitter == nil {
		if apiKey == "" {
			return nil, fmt.Errorf("%w: api key is required", ErrInvalidConfig)
		}
		switch o.endpointStyle {
		case httpAdapter.StyleBrowser, httpAdapter.StyleServer:
		default:
			return nil, fmt.Errorf("%w: unknown endpoint style %q", ErrInvalidConfig, o.endpointStyle)
		}

		client := o.httpClient
		if client == nil {
			client = &http.Client{}
		}
		a.http = httpAdapter.NewTransmitter(httpAdapter.Config{
			Endpoint: httpAdapter.Endpoint(o.endpointStyle, o.endpointHost, o.endpointPath, apiKey),
			Timeout:  o.timeout,
			Gzip:     o.gzip,
		}, client, o.logger, o.sendObserver)
		transmitter = a.http
	}

	a.controller = app.NewController(app.ControllerConfig{
		ConsoleType: consoleType,
		ClientInfo:  o.clientInfo,
	}, transmitter, o.triggers, o.logger, o.flushObserver)

	return a, nil
}

// LogEvent logs an application event.
func (a *CloudAnalytics) LogEvent(ev CloudEvent) {
	a.controller.LogEvent(ev)
}

// LogSurveyResponse logs a survey response.
func (a *CloudAnalytics) LogSurveyResponse(sr SurveyResponse) {
	a.controller.LogSurveyResponse(sr)
}

// EnableBatchMode switches to batched delivery. The interval is clamped
// to [MinFlushInterval, MaxFlushInterval]; zero selects DefaultFlushInterval.
func (a *CloudAnalytics) EnableBatchMode(flushInterval time.Duration) {
	a.controller.EnableBatchMode(flushInterval)
}

// StartBatching arms the flush timer and triggers. It is a no-op outside
// batch mode and when already started.
func (a *CloudAnalytics) StartBatching() {
	a.controller.StartBatching()
}

// StopBatching disarms the flush timer and triggers and flushes pending events.
func (a *CloudAnalytics) StopBatching() {
	a.controller.StopBatching()
}

// Flush sends pending events now.
func (a *CloudAnalytics) Flush() {
	a.controller.Flush()
}

// Mode returns the current flush mode.
func (a *CloudAnalytics) Mode() Mode {
	return a.controller.Mode()
}

// FlushInterval returns the effective flush interval.
func (a *CloudAnalytics) FlushInterval() time.Duration {
	return a.controller.FlushInterval()
}

// Pending returns the number of buffered events.
func (a *CloudAnalytics) Pending() int {
	return a.controller.Pending()
}

// Wait blocks until in-flight HTTP sends finish or ctx is done. It returns
// immediately when a custom transmitter is in use.
func (a *CloudAnalytics) Wait(ctx context.Context) error {
	if a.http == nil {
		return nil
	}
	return a.http.Wait(ctx)
}

// Close stops batching, flushing pending events, then waits for in-flight
// sends.
func (a *CloudAnalytics) Close(ctx context.Context) error {
	a.controller.StopBatching()
	return a.Wait(ctx)
}
