package metrics

// Metric namespace
const Namespace = "roguemods"

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

// Business metric names
const (
	MetricNameUnlocksPurchased = "unlocks_purchased_total"
	MetricNameCandySpent       = "candy_spent_total"
	MetricNameCatalogBuilds    = "catalog_builds_total"
	MetricNameModifiersApplied = "modifiers_applied_total"
	MetricNameSettingChanges   = "setting_changes_total"
	MetricNameCommitFailures   = "commit_failures_total"
	MetricNameCommitDuration   = "commit_duration_seconds"
	MetricNameSessionsLive     = "sessions_live"
)

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

// Business metric help text
const (
	HelpTextUnlocksPurchased = "Total number of candy unlocks purchased"
	HelpTextCandySpent       = "Total candy spent on unlocks"
	HelpTextCatalogBuilds    = "Total number of item catalog builds"
	HelpTextModifiersApplied = "Total number of catalog items applied"
	HelpTextSettingChanges   = "Total number of mod setting changes"
	HelpTextCommitFailures   = "Total number of failed save commits"
	HelpTextCommitDuration   = "Save commit latency in seconds"
	HelpTextSessionsLive     = "Number of cached player sessions"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelResult = "result"
	LabelKey    = "key"
)

// Catalog build results
const (
	ResultOK          = "ok"
	ResultUnavailable = "unavailable"
)

// Histogram buckets
var (
	HTTPLatencyBuckets   = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
	CommitLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
)

// Log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)
