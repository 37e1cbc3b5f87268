package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Progression metric names
const (
	MetricNameTiersAdvanced        = "dough_tiers_advanced_total"
	MetricNameRewardsIssued        = "wisdom_cookies_issued_total"
	MetricNameEssenceFromRewards   = "essence_from_cookies_total"
	MetricNameUpgradesPurchased    = "dojo_upgrades_purchased_total"
	MetricNameHarmonySpent         = "harmony_spent_total"
	MetricNamePurchaseFailures     = "dojo_purchase_failures_total"
	MetricNameTicksProcessed       = "progression_ticks_total"
	MetricNameProgressSaves        = "progress_saves_total"
	MetricNameProgressSaveFailures = "progress_save_failures_total"
	MetricNameProgressResets       = "progress_resets_total"
	MetricNameActiveSessions       = "progression_active_sessions"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Progression metric help text
const (
	HelpTextTiersAdvanced        = "Total number of dough form advances"
	HelpTextRewardsIssued        = "Total number of wisdom cookies issued"
	HelpTextEssenceFromRewards   = "Total essence granted by wisdom cookies"
	HelpTextUpgradesPurchased    = "Total number of dojo upgrades purchased"
	HelpTextHarmonySpent         = "Total harmony spent on dojo upgrades"
	HelpTextPurchaseFailures     = "Total number of rejected dojo purchases"
	HelpTextTicksProcessed       = "Total number of progression ticks applied"
	HelpTextProgressSaves        = "Total number of successful progress saves"
	HelpTextProgressSaveFailures = "Total number of failed progress saves"
	HelpTextProgressResets       = "Total number of progress resets"
	HelpTextActiveSessions       = "Number of player sessions held in memory"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelTier    = "tier"
	LabelUpgrade = "upgrade"
	LabelReason  = "reason"
	LabelSource  = "source"
)

// Tick sources
const (
	TickSourceRequest = "request"
	TickSourcePassive = "passive"
	TickSourceCatchUp = "catch_up"
)

// Purchase failure reasons
const (
	PurchaseFailureNotFound          = "not_found"
	PurchaseFailureAlreadyPurchased  = "already_purchased"
	PurchaseFailureInsufficientFunds = "insufficient_funds"
	PurchaseFailureOther             = "other"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnreadable = "Event payload could not be decoded"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
