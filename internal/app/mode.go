package app

import "time"

// Flush interval bounds applied when batching is enabled.
const (
	DefaultFlushInterval = 10 * time.Second
	MinFlushInterval     = 1 * time.Second
	MaxFlushInterval     = 60 * time.Second
)

// Mode is the flush mode of a Controller.
type Mode int

const (
	// ModeImmediate flushes every event as soon as it is logged.
	ModeImmediate Mode = iota
	// ModeBatched buffers events until a trigger fires.
	ModeBatched
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeImmediate:
		return "Immediate"
	case ModeBatched:
		return "Batched"
	default:
		return "Unknown"
	}
}

// ClampFlushInterval maps a requested interval onto the valid range.
// A non-positive request means "not specified" and yields the default.
func ClampFlushInterval(requested time.Duration) time.Duration {
	if requested <= 0 {
		return DefaultFlushInterval
	}
	if requested < MinFlushInterval {
		return MinFlushInterval
	}
	if requested > MaxFlushInterval {
		return MaxFlushInterval
	}
	return requested
}

// Flush reasons reported to observers and logs.
const (
	ReasonTimer  = "timer"
	ReasonManual = "manual"
	ReasonStop   = "stop"
	ReasonEvent  = "event"
)
