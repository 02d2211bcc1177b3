package ports

import "time"

// FlushObserver is notified after each non-empty flush hands a batch off.
type FlushObserver interface {
	OnFlush(reason string, eventCount int)
}

// SendObserver is notified of the outcome of each transmitted batch.
// Calls come from the transmitter's goroutines.
type SendObserver interface {
	OnSendSuccess(eventCount, bytesSent int, duration time.Duration)
	OnSendError(err error, eventCount int)
}
