// Package common contains shared wire-level constants used across the
// client packages.
package common

const (
	// AuthorizationHeader carries the bearer token on every call except
	// sign-in.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token value in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeader carries a per-request identifier for server-side
	// correlation.
	RequestIDHeader = "X-Request-Id"

	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"
	ContentTypeText   = "text/plain"
)
