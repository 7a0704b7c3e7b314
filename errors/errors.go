package errors

import (
	"fmt"
	"time"
)

// ErrorDetail is one entry of the details list AvaTax attaches to an error
// when several faults were found at once.
type ErrorDetail struct {
	Code        string `json:"code,omitempty"`
	Number      int    `json:"number,omitempty"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
	FaultCode   string `json:"faultCode,omitempty"`
	HelpLink    string `json:"helpLink,omitempty"`
	RefersTo    string `json:"refersTo,omitempty"`
	Severity    string `json:"severity,omitempty"`
}

// AvalaraError is the failure outcome of a call.
type AvalaraError struct {
	// Code is the service-reported or locally synthesized error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
	// Target names the part of the request the error refers to.
	Target string `json:"target,omitempty"`
	// Details lists sub-errors in the order AvaTax reported them.
	Details []ErrorDetail `json:"details,omitempty"`
	// StatusCode is the HTTP status of the response, 0 if none arrived.
	StatusCode int `json:"-"`
	// Cause is the underlying transport or decoding error, if any.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AvalaraError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Target != "" {
		msg += fmt.Sprintf(" (target: %s)", e.Target)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause of the error.
func (e *AvalaraError) Unwrap() error { return e.Cause }

// Kind reports where the failure happened.
func (e *AvalaraError) Kind() Kind { return KindOf(e.Code) }

// FromService carries a service-reported error object through unchanged.
// Calling it twice with the same input yields field-identical values.
func FromService(info ErrorInfo, statusCode int) *AvalaraError {
	return &AvalaraError{
		Code:       ErrorCode(info.Code),
		Message:    info.Message,
		Target:     info.Target,
		Details:    cloneDetails(info.Details),
		StatusCode: statusCode,
	}
}

// FromTransport synthesizes an error for a request that never got a usable
// response.
func FromTransport(err error) *AvalaraError {
	return &AvalaraError{
		Code:    ErrCodeNetworkFailure,
		Message: "The request could not reach AvaTax.",
		Details: []ErrorDetail{{
			Code:     string(ErrCodeNetworkFailure),
			Message:  err.Error(),
			Severity: "Exception",
		}},
		Cause: err,
	}
}

// FromTimeout synthesizes an error for a call abandoned at its deadline.
// No remote details are available.
func FromTimeout(deadline time.Duration, cause error) *AvalaraError {
	return &AvalaraError{
		Code:    ErrCodeTimeout,
		Message: fmt.Sprintf("The request did not complete within %s.", deadline),
		Cause:   cause,
	}
}

// FromParse synthesizes an error for a response whose body is not JSON.
// The raw body is preserved in the details for diagnosis.
func FromParse(statusCode int, body []byte, cause error) *AvalaraError {
	detail := ErrorDetail{
		Code:        string(ErrCodeParseFailure),
		Description: string(body),
		Severity:    "Exception",
	}
	if cause != nil {
		detail.Message = cause.Error()
	}
	return &AvalaraError{
		Code:       ErrCodeParseFailure,
		Message:    "The response body could not be parsed as JSON.",
		Details:    []ErrorDetail{detail},
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// Configuration builds the error reported (logged, not returned) when a
// local setting had to be replaced by its default.
func Configuration(target, message string) *AvalaraError {
	return &AvalaraError{
		Code:    ErrCodeConfiguration,
		Message: message,
		Target:  target,
	}
}

func cloneDetails(details []ErrorDetail) []ErrorDetail {
	if details == nil {
		return nil
	}
	out := make([]ErrorDetail, len(details))
	copy(out, details)
	return out
}

// FromEncode synthesizes an error for a request payload that could not be
// serialized. The request is never sent.
func FromEncode(cause error) *AvalaraError {
	return &AvalaraError{
		Code:    ErrCodeParseFailure,
		Message: "The request payload could not be serialized as JSON.",
		Details: []ErrorDetail{{
			Code:     string(ErrCodeParseFailure),
			Message:  cause.Error(),
			Severity: "Exception",
		}},
		Cause: cause,
	}
}
