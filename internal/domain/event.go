package domain

// CloudEvent describes an application event to be logged.
// Zero-valued fields are omitted from the wire payload.
type CloudEvent struct {
	// Type is the event category (wire: event_type).
	Type string `json:"type" yaml:"type"`

	// Name is the event name (wire: event_name).
	Name string `json:"name" yaml:"name"`

	// Metadata is an opaque list of values, typically KeyValue pairs.
	Metadata []any `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// ProjectNumber identifies the cloud project the event belongs to.
	ProjectNumber string `json:"projectNumber,omitempty" yaml:"projectNumber,omitempty"`

	// Latency is the latency associated with the event in milliseconds.
	Latency int64 `json:"latency,omitempty" yaml:"latency,omitempty"`

	// UserSessionID identifies the user session (wire: browser_window_id).
	UserSessionID string `json:"userSessionId,omitempty" yaml:"userSessionId,omitempty"`
}

// KeyValue is the conventional element type of CloudEvent.Metadata.
type KeyValue struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// LogEvent is a normalized event: the time it was logged and its serialized
// ConcordEvent. It is immutable once created.
type LogEvent struct {
	EventTimeMs         int64  `json:"event_time_ms"`
	SourceExtensionJSON string `json:"source_extension_json"`
}
