package httpclient

import "net/http"

// HTTPOptions is the fully prepared wire form of one call: verb, headers
// and the serialized body. It is built fresh per call and never shared.
type HTTPOptions struct {
	Method  string
	Headers http.Header
	Body    []byte
}

// Request describes an outbound AvaTax call.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string
	// Path is appended to the client's base URL. An absolute http(s) URL is
	// used as is, which is how continuation links are followed.
	Path string
	// Query are URL query parameters, encoded in order.
	Query []QueryParam
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Body is the request payload. []byte is sent as is; any other value is
	// JSON-encoded. Ignored for GET and HEAD.
	Body any
	// Decode, when set, receives the body of a successful response before
	// the call completes. An error fails the call as a parse failure.
	Decode func(body []byte) error
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
	// CorrelationID is the server-issued x-correlation-id, if any.
	CorrelationID string
	// RequestID is the client-side id recorded in the log for this call.
	RequestID string
}
