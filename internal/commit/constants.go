package commit

import "time"

// DefaultTimeout bounds one commit when none is configured
const DefaultTimeout = 5 * time.Second

// Log messages
const (
	LogMsgCommitStarted   = "Committing save"
	LogMsgCommitSucceeded = "Save committed"
	LogMsgCommitFailed    = "Save commit failed"
	LogMsgPublishFailed   = "Failed to publish commit event"
)
