// Package models defines the persistence-layer records shared by the
// repositories and services.
package models

import "time"

// Account is a registered user of the platform. Username and Email are
// globally unique; PasswordHash is a bcrypt digest and is never exposed over
// the API. ID is a surrogate UUID assigned at signup and never reused.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	Role         string
	CreatedAt    time.Time
}
