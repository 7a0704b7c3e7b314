package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON error envelope AvaTax returns. It may arrive
// with any HTTP status, including 200.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
}

// ErrorInfo is the body of the error envelope.
type ErrorInfo struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Target  string        `json:"target,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ToResponse converts an AvalaraError back into the wire envelope.
func (e *AvalaraError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: &ErrorInfo{
			Code:    string(e.Code),
			Message: e.Message,
			Target:  e.Target,
			Details: cloneDetails(e.Details),
		},
	}
}

// IsAvalaraError checks if an error is an AvalaraError.
func IsAvalaraError(err error) bool {
	var ae *AvalaraError
	return stderrors.As(err, &ae)
}

// AsAvalaraError converts an error to an AvalaraError if possible.
func AsAvalaraError(err error) (*AvalaraError, bool) {
	var ae *AvalaraError
	if stderrors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsServiceError checks if err is a business-level failure reported by AvaTax.
func IsServiceError(err error) bool { return isKind(err, KindService) }

// IsTransport checks if err is a network failure.
func IsTransport(err error) bool { return isKind(err, KindTransport) }

// IsTimeout checks if err is a locally abandoned call.
func IsTimeout(err error) bool { return isKind(err, KindTimeout) }

// IsParse checks if err is an unparseable response.
func IsParse(err error) bool { return isKind(err, KindParse) }

func isKind(err error, k Kind) bool {
	ae, ok := AsAvalaraError(err)
	return ok && ae.Kind() == k
}
