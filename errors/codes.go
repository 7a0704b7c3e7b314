package errors

// ErrorCode is the machine-readable code of an AvalaraError. Service errors
// carry whatever code AvaTax reported; the client synthesizes the ones below.
type ErrorCode string

// Codes synthesized locally when AvaTax did not produce a usable answer.
const (
	// ErrCodeNetworkFailure indicates the request never received a response
	// (DNS, connection refused, reset).
	ErrCodeNetworkFailure ErrorCode = "NetworkFailure"
	// ErrCodeTimeout indicates the configured deadline elapsed first.
	ErrCodeTimeout ErrorCode = "RequestTimeout"
	// ErrCodeParseFailure indicates a response body that is not valid JSON.
	ErrCodeParseFailure ErrorCode = "ParseFailure"
	// ErrCodeConfiguration indicates a local misconfiguration. It is only
	// ever logged, never returned from a call.
	ErrCodeConfiguration ErrorCode = "ConfigurationError"
)

// A few codes AvaTax commonly reports. Not exhaustive.
const (
	ErrCodeAuthentication ErrorCode = "AuthenticationException"
	ErrCodeAuthorization  ErrorCode = "AuthorizationException"
	ErrCodeEntityNotFound ErrorCode = "EntityNotFoundError"
	ErrCodeValueRequired  ErrorCode = "ValueRequiredError"
	ErrCodeInvalidAddress ErrorCode = "InvalidAddress"
)

// Kind groups error codes by where the failure happened.
type Kind int

const (
	// KindService is a business-level failure reported by AvaTax.
	KindService Kind = iota
	// KindTransport is a failure to get any response.
	KindTransport
	// KindTimeout is a locally abandoned call.
	KindTimeout
	// KindParse is a response whose body could not be parsed.
	KindParse
	// KindConfiguration is a locally recovered misconfiguration.
	KindConfiguration
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindService:
		return "ServiceError"
	case KindTransport:
		return "TransportError"
	case KindTimeout:
		return "TimeoutError"
	case KindParse:
		return "ParseError"
	case KindConfiguration:
		return "ConfigurationError"
	default:
		return "Unknown"
	}
}

// KindOf maps a code to its kind. Any code not synthesized by the client is
// a service error.
func KindOf(code ErrorCode) Kind {
	switch code {
	case ErrCodeNetworkFailure:
		return KindTransport
	case ErrCodeTimeout:
		return KindTimeout
	case ErrCodeParseFailure:
		return KindParse
	case ErrCodeConfiguration:
		return KindConfiguration
	default:
		return KindService
	}
}
