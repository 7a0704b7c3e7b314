package logger

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/avatax/errors"
)

// LogRecord captures one request/response cycle. It is created at request
// start, filled in as the call progresses, and emitted exactly once.
//
// StatusCode and CorrelationID are set-once: a later stage of the same call
// never overwrites them.
type LogRecord struct {
	RequestID          string               `json:"requestId"`
	HTTPMethod         string               `json:"httpMethod"`
	RequestURI         string               `json:"requestURI"`
	CorrelationID      string               `json:"correlationId,omitempty"`
	RequestDetails     string               `json:"requestDetails,omitempty"`
	ResponseDetails    string               `json:"responseDetails,omitempty"`
	StatusCode         int                  `json:"statusCode"`
	Timestamp          time.Time            `json:"timestamp"`
	TotalExecutionTime time.Duration        `json:"-"`
	ErrorInfo          *errors.AvalaraError `json:"errorInfo,omitempty"`

	captureBodies  bool
	start          time.Time
	statusSet      bool
	correlationSet bool
	emitted        bool
}

// NewLogRecord starts a record for one call. Bodies are captured only when
// captureBodies is set.
func NewLogRecord(method, requestURI string, captureBodies bool) *LogRecord {
	now := time.Now()
	return &LogRecord{
		RequestID:     uuid.NewString(),
		HTTPMethod:    method,
		RequestURI:    requestURI,
		Timestamp:     now.UTC(),
		captureBodies: captureBodies,
		start:         now,
	}
}

// RequestSent records the outgoing payload.
func (r *LogRecord) RequestSent(body []byte) {
	if r.captureBodies && len(body) > 0 {
		r.RequestDetails = string(body)
	}
}

// ResponseReceived records the status and correlation id once response
// headers are available.
func (r *LogRecord) ResponseReceived(statusCode int, correlationID string) {
	r.SetStatusCode(statusCode)
	r.SetCorrelationID(correlationID)
}

// SetStatusCode sets the status code unless one is already recorded.
func (r *LogRecord) SetStatusCode(code int) {
	if r.statusSet || code == 0 {
		return
	}
	r.StatusCode = code
	r.statusSet = true
}

// SetCorrelationID sets the correlation id unless one is already recorded.
func (r *LogRecord) SetCorrelationID(id string) {
	if r.correlationSet || id == "" {
		return
	}
	r.CorrelationID = id
	r.correlationSet = true
}

// Complete stamps the elapsed time and attaches the response body or the
// error. The status code and error code are kept regardless of body capture.
func (r *LogRecord) Complete(body []byte, err *errors.AvalaraError) {
	r.TotalExecutionTime = time.Since(r.start)
	if err != nil {
		r.ErrorInfo = err
		r.SetStatusCode(err.StatusCode)
	}
	if r.captureBodies && len(body) > 0 {
		r.ResponseDetails = string(body)
	}
}

// Level is the severity the record is emitted at.
func (r *LogRecord) Level() Level {
	if r.ErrorInfo != nil {
		return LevelError
	}
	return LevelInfo
}

// MarshalJSON renders the execution time in milliseconds.
func (r *LogRecord) MarshalJSON() ([]byte, error) {
	type alias LogRecord
	return json.Marshal(struct {
		*alias
		TotalExecutionTimeMs int64 `json:"totalExecutionTime"`
	}{
		alias:                (*alias)(r),
		TotalExecutionTimeMs: r.TotalExecutionTime.Milliseconds(),
	})
}

// markEmitted reports whether this is the first emission.
func (r *LogRecord) markEmitted() bool {
	if r.emitted {
		return false
	}
	r.emitted = true
	return true
}
