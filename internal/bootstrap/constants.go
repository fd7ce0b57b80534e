package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept at startup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting session rewards service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Feature Flags
// =============================================================================

const (
	LogMsgFeatureFlagsLoaded   = "Feature flags loaded"
	LogMsgFeatureFlagsDefaults = "Feature flag file not found, using defaults"
	ErrMsgFailedLoadFlags      = "failed to load feature flags"
)

// =============================================================================
// Realtime
// =============================================================================

const (
	LogMsgUpdateHandlersRegistered = "Realtime update handlers registered"
	LogMsgRealtimeStarted          = "Realtime listener started"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

// ShutdownTimeout bounds the whole graceful shutdown
const ShutdownTimeout = 10 * time.Second

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingRealtime      = "Closing realtime subscriptions..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Background worker shutdown failed"
)
