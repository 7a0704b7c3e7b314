package rest

import "github.com/kbukum/avatax/errors"

// IsNotFound reports whether AvaTax said the entity does not exist.
func IsNotFound(err error) bool { return hasCode(err, errors.ErrCodeEntityNotFound) }

// IsAuth reports an authentication or authorization rejection.
func IsAuth(err error) bool {
	return hasCode(err, errors.ErrCodeAuthentication) || hasCode(err, errors.ErrCodeAuthorization)
}

// IsTimeout reports a call abandoned at its deadline.
func IsTimeout(err error) bool { return errors.IsTimeout(err) }

func hasCode(err error, code errors.ErrorCode) bool {
	ae, ok := errors.AsAvalaraError(err)
	return ok && ae.Code == code
}
