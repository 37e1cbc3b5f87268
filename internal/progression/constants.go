package progression

import "time"

// Cache defaults
const (
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 30 * time.Minute
)

// Save reasons, reported in progress.saved events
const (
	SaveReasonManual   = "manual"
	SaveReasonAutosave = "autosave"
	SaveReasonEvicted  = "evicted"
	SaveReasonShutdown = "shutdown"
)

// Event metadata
const (
	MetadataKeySource    = "source"
	MetadataKeyRequestID = "request_id"

	SourceInteraction = "interaction"
	SourcePurchase    = "purchase"
	SourceReset       = "reset"
)

// Log messages
const (
	LogMsgSessionLoaded    = "Progress loaded"
	LogMsgSessionCreated   = "New player session created"
	LogMsgCatchUpApplied   = "Offline catch-up applied"
	LogMsgProgressSaved    = "Progress saved"
	LogMsgSaveFailed       = "Failed to save progress"
	LogMsgEvictedSaveError = "Failed to save evicted session"
	LogMsgPublishFailed    = "Failed to publish progression event"
	LogMsgUnknownEventRef  = "Progression event references unknown catalog entry"
	LogMsgProgressReset    = "Progress reset"
	LogMsgProgressRestored = "Progress restored from client state"
	LogMsgShuttingDown     = "Shutting down progression service"
)
