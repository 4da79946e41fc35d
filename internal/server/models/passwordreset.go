package models

import "time"

// PasswordResetRequest is a pending, single-use reset secret keyed by email.
// Issuing a new request for the same email replaces the previous row, so at
// most one secret is live per address. The row is deleted on redemption.
type PasswordResetRequest struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}
