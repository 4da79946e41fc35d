package models

import "time"

// SessionToken is the stored half of an issued bearer token. The signed JWT
// carries the claims; this row makes the token revocable before its embedded
// expiry. A token only validates while both layers agree.
type SessionToken struct {
	ID        string
	AccountID string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
