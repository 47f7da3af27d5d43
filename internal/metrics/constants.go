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

// Game metric names
const (
	MetricNameActionsTotal         = "game_actions_total"
	MetricNameTicksTotal           = "game_ticks_total"
	MetricNameTickDuration         = "game_tick_duration_seconds"
	MetricNameAchievementsUnlocked = "game_achievements_unlocked_total"
	MetricNamePrestigesTotal       = "game_prestiges_total"
	MetricNameCriticalHits         = "game_critical_hits_total"
	MetricNameCurrency             = "game_currency"
	MetricNameLifetimeCurrency     = "game_lifetime_currency"
	MetricNameJobsDropped          = "worker_jobs_dropped_total"
)

// Event stream metric names
const (
	MetricNameStreamClients       = "stream_clients"
	MetricNameStreamEventsDropped = "stream_events_dropped_total"
)

// Persistence metric names
const (
	MetricNameSavesTotal   = "save_operations_total"
	MetricNameSaveDuration = "save_duration_seconds"
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

// Game metric help text
const (
	HelpTextActionsTotal         = "Total number of player actions by outcome"
	HelpTextTicksTotal           = "Total number of engine ticks"
	HelpTextTickDuration         = "Engine tick latency in seconds"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextPrestigesTotal       = "Total number of successful prestiges"
	HelpTextCriticalHits         = "Total number of critical manual actions"
	HelpTextCurrency             = "Current spendable currency in coins"
	HelpTextLifetimeCurrency     = "Lifetime currency in coins"
	HelpTextJobsDropped          = "Total number of jobs dropped because the worker queue was full"
)

// Event stream metric help text
const (
	HelpTextStreamClients       = "Current number of open event streams"
	HelpTextStreamEventsDropped = "Total number of game events not delivered to a stream"
)

// Persistence metric help text
const (
	HelpTextSavesTotal   = "Total number of save store operations by outcome"
	HelpTextSaveDuration = "Save store operation latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelAction    = "action"
	LabelResult    = "result"
	LabelOperation = "operation"
	LabelBackend   = "backend"
	LabelJob       = "job"
	LabelReason    = "reason"
)

// Label values
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"

	DropReasonHubFull    = "hub_full"
	DropReasonClientSlow = "client_slow"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets are the histogram buckets for HTTP request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets are the histogram buckets for engine tick latency
var TickLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnknown = "Event payload type not recognised for metrics"
	LogMsgMetricsRecorded     = "Recorded metrics for event"
)
