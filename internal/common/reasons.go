package common

import "errors"

// Machine-readable failure reasons shared by the HTTP and gRPC surfaces.
const (
	ReasonAccessDenied           = "access-denied"
	ReasonOracleUnavailable      = "oracle-unavailable"
	ReasonTokenInvalidOrExpired  = "expired-or-invalid-token"
	ReasonTokenHandleMismatch    = "handle-mismatch"
	ReasonContentUnavailable     = "content-unavailable"
	ReasonRegistrationIncomplete = "registration-incomplete"
	ReasonIntegrityFailure       = "integrity-failure"
	ReasonInvalidRequest         = "invalid-request"
	ReasonUnauthorized           = "unauthorized"
	ReasonInternal               = "internal-error"
)

var reasons = []struct {
	err    error
	reason string
}{
	// Order matters: a rollback failure wraps the oracle error text but
	// must still be reported as incomplete.
	{ErrRegistrationIncomplete, ReasonRegistrationIncomplete},
	{ErrInvalidRequest, ReasonInvalidRequest},
	{ErrorUnauthorized, ReasonUnauthorized},
	{ErrInvalidToken, ReasonUnauthorized},
	{ErrAccessDenied, ReasonAccessDenied},
	{ErrOracleUnavailable, ReasonOracleUnavailable},
	{ErrTokenInvalidOrExpired, ReasonTokenInvalidOrExpired},
	{ErrTokenHandleMismatch, ReasonTokenHandleMismatch},
	{ErrContentUnavailable, ReasonContentUnavailable},
	{ErrAuthenticationFailure, ReasonIntegrityFailure},
}

// Reason classifies err. Anything outside the taxonomy is ReasonInternal.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonInternal
}

// ErrorFor maps a reason received from the gateway back to its sentinel.
// Unknown reasons map to ErrorInternal.
func ErrorFor(reason string) error {
	if reason == ReasonUnauthorized {
		return ErrorUnauthorized
	}
	for _, r := range reasons {
		if r.reason == reason {
			return r.err
		}
	}
	return ErrorInternal
}
