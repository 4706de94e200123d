// Package common defines shared constants and sentinel errors used across
// the gateway, its repositories and its transports. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")

	// Cipher errors. Tampering, a wrong key and a truncated buffer all
	// surface as the same error.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// Access decisions.
	ErrAccessDenied           = errors.New("access denied by time-lock")
	ErrOracleUnavailable      = errors.New("access oracle unavailable")
	ErrContentUnavailable     = errors.New("content unavailable")
	ErrRegistrationIncomplete = errors.New("time-lock registration incomplete")

	// View token lifecycle errors.
	ErrTokenInvalidOrExpired = errors.New("view token expired or invalid")
	ErrTokenHandleMismatch   = errors.New("view token does not match requested file")

	// Admin auth errors (invalid or malformed JWT).
	ErrInvalidToken = errors.New("invalid token")
)
