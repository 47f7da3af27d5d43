package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// ServiceName tags every log line
	ServiceName = "gemclicker"

	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept from earlier sessions
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGemClicker  = "Starting GemClicker"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Catalog and Storage
// =============================================================================

const (
	CatalogSourceEmbedded = "embedded"

	LogMsgCatalogLoaded = "Catalog loaded"
	LogMsgStoreOpened   = "Save store opened"
	LogMsgStoreClosed   = "Save store closed"

	ErrMsgFailedLoadCatalog   = "failed to load catalog"
	ErrMsgFailedOpenFileStore = "failed to open file store"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrateDB     = "failed to migrate database"
	ErrMsgFailedCreateS3      = "failed to create s3 client"
	ErrMsgUnknownBackend      = "unknown storage backend"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized = "Event system initialized"
)

// =============================================================================
// Runtime
// =============================================================================

const (
	// TickQueueSize leaves room for a tick and an autosave per worker
	TickQueueSize = 8

	LogMsgJobsScheduled = "Game loop scheduled"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// ShutdownTimeout bounds the whole shutdown sequence including the final save
	ShutdownTimeout = 10 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgFinalSaveFailed      = "Final save failed"
	LogMsgStoreCloseFailed     = "Save store close failed"
)
