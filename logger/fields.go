package logger

// componentName tags every line written by the default backend.
const componentName = "avatax"

// Standard field key constants for structured logging.
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldCorrelationID = "correlation_id"
	FieldMethod        = "http_method"
	FieldRequestURI    = "request_uri"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldErrorCode     = "error_code"
	FieldDuration      = "duration_ms"
	FieldRequestBody   = "request_details"
	FieldResponseBody  = "response_details"
)
