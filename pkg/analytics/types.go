package analytics

import (
	httpAdapter "github.com/bft-labs/concordlog/internal/adapters/http"
	"github.com/bft-labs/concordlog/internal/adapters/trigger"
	"github.com/bft-labs/concordlog/internal/app"
	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/internal/ports"
)

// Event types.
type (
	CloudEvent             = domain.CloudEvent
	KeyValue               = domain.KeyValue
	SurveyResponse         = domain.SurveyResponse
	SurveyMetadata         = domain.SurveyMetadata
	MultipleChoiceResponse = domain.MultipleChoiceResponse
	RatingResponse         = domain.RatingResponse
	OpenTextResponse       = domain.OpenTextResponse
)

// Client description.
type (
	ClientInfo        = domain.ClientInfo
	JSClientInfo      = domain.JSClientInfo
	DesktopClientInfo = domain.DesktopClientInfo
	ClientType        = domain.ClientType
	DeviceType        = domain.DeviceType
	OsType            = domain.OsType
)

const (
	ClientTypeJS      = domain.ClientTypeJS
	ClientTypeDesktop = domain.ClientTypeDesktop

	DeviceTypeUnknown    = domain.DeviceTypeUnknown
	DeviceTypeMobile     = domain.DeviceTypeMobile
	DeviceTypeDesktop    = domain.DeviceTypeDesktop
	DeviceTypeTablet     = domain.DeviceTypeTablet
	DeviceTypeGoogleHome = domain.DeviceTypeGoogleHome

	OsTypeMac     = domain.OsTypeMac
	OsTypeWindows = domain.OsTypeWindows
	OsTypeLinux   = domain.OsTypeLinux
)

// Batch is the envelope handed to a Transmitter.
type Batch = domain.OutboundBatch

// Collaborator interfaces.
type (
	Transmitter   = ports.Transmitter
	FlushTrigger  = ports.FlushTrigger
	FlushObserver = ports.FlushObserver
	SendObserver  = ports.SendObserver
	HTTPClient    = ports.HTTPClient
)

// Mode is the flush mode of a client.
type Mode = app.Mode

const (
	ModeImmediate = app.ModeImmediate
	ModeBatched   = app.ModeBatched
)

// Flush interval bounds.
const (
	DefaultFlushInterval = app.DefaultFlushInterval
	MinFlushInterval     = app.MinFlushInterval
	MaxFlushInterval     = app.MaxFlushInterval
)

// EndpointStyle selects how the endpoint URL is built.
type EndpointStyle = httpAdapter.EndpointStyle

const (
	StyleBrowser = httpAdapter.StyleBrowser
	StyleServer  = httpAdapter.StyleServer
)

// Host hook support for embedders.
type (
	Hooks       = trigger.Hooks
	EventTarget = trigger.EventTarget
	ListenerID  = trigger.ListenerID
)

const (
	EventBeforeUnload = trigger.EventBeforeUnload
	EventUnload       = trigger.EventUnload
)

// NewHooks creates an in-process lifecycle event registry.
func NewHooks() *Hooks { return trigger.NewHooks() }

// NewHookTrigger creates a trigger that flushes on EventBeforeUnload and
// EventUnload from target.
func NewHookTrigger(target EventTarget) FlushTrigger { return trigger.NewHookTrigger(target) }

// ErrInvalidConfig is returned by New for missing required settings.
var ErrInvalidConfig = domain.ErrInvalidConfig
