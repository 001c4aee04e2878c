package bootstrap

import "time"

const (
	// DirPermission is the permission for created log directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0666
)

// Log file rotation
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Connection pool tuning for the postgres store
const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour
)

// Worker pool queue depth per commit worker
const CommitQueuePerWorker = 16

// Store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Log messages
const (
	LogMsgLoggingInitialized      = "Logging initialized"
	LogMsgStarting                = "Starting RogueMods"
	LogMsgConfigurationLoaded     = "Configuration loaded"
	LogMsgFailedDeleteOldLog      = "Failed to delete old log file"
	LogMsgGameDataLoaded          = "Game data loaded"
	LogMsgStoreInitialized        = "Save store initialized"
	LogMsgEventSystemInitialized  = "Event system initialized"
	LogMsgMetricsRegistered       = "Metrics collector registered"
	LogMsgShuttingDownServer      = "Shutting down server..."
	LogMsgShuttingDownCommitQueue = "Draining commit workers..."
	LogMsgServerStopped           = "Server stopped"
	LogMsgServerForcedShutdown    = "Server forced to shutdown"
	LogMsgStoreCloseFailed        = "Save store close failed"
)

// Error messages
const (
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	ErrMsgFailedLoadGameData  = "failed to load game data"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to apply migrations"
	ErrMsgFailedConnectRedis  = "failed to connect to redis"
	ErrMsgUnknownStore        = "unknown store backend %q"
)

// ModifierQueueLimit caps the modifiers waiting per player
const ModifierQueueLimit = 64
