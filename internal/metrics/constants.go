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

// Remote procedure metric names
const (
	MetricNameRPCDuration = "rpc_call_duration_seconds"
	MetricNameRPCFailures = "rpc_call_failures_total"
)

// Realtime metric names
const (
	MetricNameRealtimeUpdates     = "realtime_updates_total"
	MetricNameRealtimeDropped     = "realtime_updates_dropped_total"
	MetricNameRealtimeSubscribers = "realtime_subscribers"
)

// Business metric names
const (
	MetricNameRewardCalculations = "reward_calculations_total"
	MetricNameSessionsCompleted  = "sessions_completed_total"
	MetricNameSessionsRolledBack = "sessions_rolled_back_total"
	MetricNameXPAwarded          = "xp_awarded_total"
	MetricNameHPRestored         = "hp_restored_total"
	MetricNameTokensRedeemed     = "tokens_redeemed_total"
	MetricNameCheckoutsCreated   = "checkouts_created_total"
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

// Remote procedure metric help text
const (
	HelpTextRPCDuration = "Latency of hosted backend function calls in seconds"
	HelpTextRPCFailures = "Total number of failed hosted backend function calls"
)

// Realtime metric help text
const (
	HelpTextRealtimeUpdates     = "Total number of player updates received from the change feed"
	HelpTextRealtimeDropped     = "Total number of player updates dropped for slow subscribers"
	HelpTextRealtimeSubscribers = "Current number of realtime subscribers"
)

// Business metric help text
const (
	HelpTextRewardCalculations = "Total number of reward calculations"
	HelpTextSessionsCompleted  = "Total number of sessions completed"
	HelpTextSessionsRolledBack = "Total number of session completions rolled back by the backend"
	HelpTextXPAwarded          = "Total XP awarded to players"
	HelpTextHPRestored         = "Total HP restored to players"
	HelpTextTokensRedeemed     = "Total club tokens redeemed"
	HelpTextCheckoutsCreated   = "Total number of payment checkouts created"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelFunction    = "function"
	LabelReason      = "reason"
	LabelKind        = "kind"
	LabelSessionType = "session_type"
)

// Failure reasons for remote procedure calls
const (
	ReasonTransport = "transport"
	ReasonMalformed = "malformed"
	ReasonRejected  = "rejected"
	ReasonRollback  = "rollback"
)

// PathUnmatched labels requests that did not match any route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RPCLatencyBuckets covers hosted function calls, which include a network hop
var RPCLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUpdateRecorded = "Metrics recorded for player update"
)
