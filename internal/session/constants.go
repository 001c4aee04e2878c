package session

import "time"

// Cache defaults used when the configured values are not positive
const (
	DefaultCacheSize = 256
	DefaultTTL       = 30 * time.Minute
)

// Log messages
const (
	LogMsgSessionOpened   = "Session opened"
	LogMsgSessionReloaded = "Session reloaded from store"
	LogMsgNewSave         = "No stored save, starting fresh"
	LogMsgCommitSkipped   = "Commit already in flight"
)
