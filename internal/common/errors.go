// Package common defines shared constants and sentinel errors used across
// the itemvault server layers. Callers should use errors.Is to match these
// values; the REST boundary translates them into HTTP status codes.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrorUnauthorized signals a failed credential check at login.
	// Deliberately the same value for "unknown email" and "wrong password".
	ErrorUnauthorized = errors.New("invalid email and/or password")

	// ErrorUnauthenticated signals a missing or unusable session token.
	ErrorUnauthenticated = errors.New("unauthenticated")

	// Token errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
