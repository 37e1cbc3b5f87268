package logger

// Accepted LOG_LEVEL values. "warning" is read as warn.
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Fallbacks for empty Config fields
const (
	DefaultServiceName = "dough-guardian"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Attribute keys shared by every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyPlayerID    = "player_id"
)
