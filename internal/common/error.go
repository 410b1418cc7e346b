// Package common defines the sentinel errors shared across the layers of
// accountd. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("user not found")
	ErrorAlreadyExists = errors.New("username or email already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid credentials")

	// Validation errors. The message is surfaced verbatim to the caller.
	ErrorInvalidEmail     = errors.New("invalid email format")
	ErrorWeakPassword     = errors.New("weak password: minimum 8 characters with uppercase, lowercase, digit and special character")
	ErrorPasswordMismatch = errors.New("passwords do not match")

	// Token lifecycle errors. All of them collapse to Unauthorized at the
	// HTTP edge; they stay distinct for logging.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNoSubject    = errors.New("token has no subject")
)
