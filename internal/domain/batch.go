package domain

// OutboundBatch is the envelope sent to the logging endpoint on every flush.
// It is built fresh for each flush and not retained after hand-off.
type OutboundBatch struct {
	ClientInfo    FirelogClientInfo `json:"client_info"`
	LogSourceName string            `json:"log_source_name"`
	RequestTimeMs int64             `json:"request_time_ms"`
	LogEvent      []LogEvent        `json:"log_event"`
}

// Size returns the number of events in the batch.
func (b *OutboundBatch) Size() int {
	return len(b.LogEvent)
}

// Empty returns true if the batch has no events.
func (b *OutboundBatch) Empty() bool {
	return len(b.LogEvent) == 0
}
