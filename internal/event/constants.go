package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Error messages
const (
	ErrMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %w"
)
