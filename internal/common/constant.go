// Package common contains shared constants and sentinel errors used across
// timevault components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the admin
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the HTTP header propagated into request-scoped logs.
const RequestIDHeaderName = "X-Request-ID"

// ViewTokenTTLSeconds is the default lifetime of a view token.
const ViewTokenTTLSeconds = 60
