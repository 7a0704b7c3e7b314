// Package errors defines AvalaraError, the single error value every failed
// AvaTax call produces, and the translators that build it from a
// service-reported error object, a transport fault, a timeout, or an
// unparseable response body.
//
// Callers tell the kinds apart by Code, or with the Is* predicates:
//
//	if errors.IsServiceError(err) {
//	    ae, _ := errors.AsAvalaraError(err)
//	    log.Printf("%s on %s", ae.Code, ae.Target)
//	}
package errors
