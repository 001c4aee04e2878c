package menu

// CancelLabel is the synthesized last entry of every screen
const CancelLabel = "Cancel"

// Log messages
const (
	LogMsgCommitFailed = "Commit after menu action failed"
	LogMsgMenuExited   = "Menu exited"
	LogMsgActionFailed = "Menu action failed"
)

// Error message formats
const (
	ErrMsgSelectionRangeFormat = "index %d outside 0..%d"
	ErrMsgExpandFailedFormat   = "failed to open %q: %w"
)
