package sessiontokens

import (
	"context"
	"time"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// Repository stores the revocable half of issued session tokens. Find is
// consulted on every protected request; Delete implements revocation.
type Repository interface {
	Create(ctx context.Context, accountID, token string, expiresAt time.Time) error
	Find(ctx context.Context, token string) (*models.SessionToken, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
