// Package common defines shared constants and sentinel errors used across
// the Growlio backend layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Session / reset token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Notification delivery errors.
	ErrDeliveryFailed = errors.New("delivery failed")
)
