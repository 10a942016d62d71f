package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFeed       = "feed"
	FieldURL        = "url"
	FieldCount      = "count"
	FieldCategory   = "category"
	FieldError      = "error"
	FieldStatus     = "status"
	FieldDuration   = "duration_ms"
	FieldCacheAge   = "cache_age_s"
	FieldStale      = "stale"
	FieldOutputFile = "output_file"
)
