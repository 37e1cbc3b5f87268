package bootstrap

// File system permissions
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Log file rotation
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

// ServiceName tags every log record
const ServiceName = "dough-guardian"

// Log messages
const (
	LogMsgLoggingInitialized      = "Logging initialized"
	LogMsgStarting                = "Starting Dough Guardian"
	LogMsgConfigurationLoaded     = "Configuration loaded"
	LogMsgCatalogLoaded           = "Catalog loaded"
	LogMsgStoreOpened             = "Progress store opened"
	LogMsgEventSystemInitialized  = "Event system initialized"
	LogMsgMetricsCollectorReady   = "Metrics collector registered"
	LogMsgSSESubscriberReady      = "SSE subscriber registered"
	LogMsgForwarderReady          = "AMQP forwarder registered"
	LogMsgForwardingDisabled      = "AMQP_URL not set, event forwarding disabled"
	LogMsgShuttingDownServer      = "Shutting down server..."
	LogMsgShuttingDownPublisher   = "Shutting down event publisher..."
	LogMsgServerStopped           = "Server stopped"
	LogMsgServerForcedShutdown    = "Server forced to shutdown"
	LogMsgComponentShutdownFailed = "Component shutdown failed"
)

// Error messages
const (
	ErrMsgCreateLogsDir       = "failed to create logs directory"
	ErrMsgOpenLogFile         = "failed to open log file"
	ErrMsgCreateDeadLetterDir = "failed to create dead-letter directory"
	ErrMsgCreateResilientPub  = "failed to create resilient publisher"
	ErrMsgRegisterMetrics     = "failed to register metrics collector"
	ErrMsgConnectForwarder    = "failed to connect AMQP forwarder"
	ErrMsgLoadCatalog         = "failed to load catalog"
	ErrMsgUnknownBackend      = "unknown store backend %q"
	ErrMsgOpenFileStore       = "failed to open file store"
	ErrMsgOpenPostgres        = "failed to connect to postgres"
	ErrMsgMigratePostgres     = "failed to migrate postgres"
	ErrMsgOpenRedis           = "failed to connect to redis"
	AMQPDeadLetterSuffix      = "_amqp"
)
