package logger

// Accepted level and format names, matched case-insensitively
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults used before configuration is loaded
const (
	DefaultServiceName = "rogue-mods"
	DefaultVersion     = "dev"
	// EnvironmentDev also turns on source locations
	EnvironmentDev = "dev"
)

// Attribute keys attached to every record or carried in the context
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyPlayerID    = "player_id"
)
