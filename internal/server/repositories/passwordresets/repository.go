package passwordresets

import (
	"context"
	"time"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// Repository stores pending password-reset requests, keyed by email.
// FindByTokenForUpdate locks the row so redemption can run as a single
// read-update-delete unit inside a transaction.
type Repository interface {
	Upsert(ctx context.Context, email, token string, expiresAt time.Time) error
	FindByTokenForUpdate(ctx context.Context, token string) (*models.PasswordResetRequest, error)
	DeleteByEmail(ctx context.Context, email string) error
}
