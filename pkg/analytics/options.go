package analytics

import (
	"context"
	"time"

	httpAdapter "github.com/bft-labs/concordlog/internal/adapters/http"
	"github.com/bft-labs/concordlog/internal/adapters/trigger"
	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/internal/ports"
	"github.com/bft-labs/concordlog/pkg/log"
)

// Option configures optional behavior of CloudAnalytics.
type Option func(*options)

type options struct {
	logger        log.Logger
	httpClient    ports.HTTPClient
	transmitter   ports.Transmitter
	clientInfo    domain.ClientInfo
	triggers      []ports.FlushTrigger
	endpointStyle httpAdapter.EndpointStyle
	endpointHost  string
	endpointPath  string
	timeout       time.Duration
	gzip          bool
	flushObserver ports.FlushObserver
	sendObserver  ports.SendObserver
}

func defaultOptions() options {
	return options{
		logger:        log.NewNoopLogger(),
		clientInfo:    domain.DefaultClientInfo(),
		endpointStyle: httpAdapter.StyleBrowser,
		timeout:       30 * time.Second,
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHTTPClient sets the client used by the built-in transmitter.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTransmitter replaces the built-in HTTP transmitter. The API key is
// not required when a transmitter is supplied.
func WithTransmitter(t Transmitter) Option {
	return func(o *options) {
		o.transmitter = t
	}
}

// WithClientInfo sets the client description attached to every batch.
// Default: a JS client with no device type.
func WithClientInfo(info ClientInfo) Option {
	return func(o *options) {
		o.clientInfo = info
	}
}

// WithTriggers adds flush triggers armed by StartBatching.
func WithTriggers(triggers ...FlushTrigger) Option {
	return func(o *options) {
		o.triggers = append(o.triggers, triggers...)
	}
}

// WithExitContext adds the server process triggers: a flush when ctx is
// cancelled and a flush on SIGHUP.
func WithExitContext(ctx context.Context) Option {
	return func(o *options) {
		o.triggers = append(o.triggers,
			trigger.NewExitTrigger(ctx),
			trigger.NewSignalTrigger(),
		)
	}
}

// WithEndpointStyle selects browser or server endpoint URLs.
func WithEndpointStyle(style EndpointStyle) Option {
	return func(o *options) {
		o.endpointStyle = style
	}
}

// WithEndpoint overrides the endpoint hostname and path.
func WithEndpoint(hostname, path string) Option {
	return func(o *options) {
		o.endpointHost = hostname
		o.endpointPath = path
	}
}

// WithTimeout bounds each HTTP request. Zero disables the bound.
// Default: 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithGzip compresses request bodies.
func WithGzip(enabled bool) Option {
	return func(o *options) {
		o.gzip = enabled
	}
}

// WithFlushObserver receives a call for every non-empty flush.
func WithFlushObserver(obs FlushObserver) Option {
	return func(o *options) {
		o.flushObserver = obs
	}
}

// WithSendObserver receives the outcome of every HTTP send.
func WithSendObserver(obs SendObserver) Option {
	return func(o *options) {
		o.sendObserver = obs
	}
}
