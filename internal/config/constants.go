package config

// Store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Error message formats
const (
	ErrMsgParseEnv      = "parse env: %w"
	ErrMsgInvalidConfig = "invalid config: %w"
)
