package accounts

import (
	"context"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// Repository is the credential store contract. Uniqueness of username and
// email is ultimately enforced by the database constraints; IdentifierTaken
// only provides the cheap pre-check.
type Repository interface {
	Create(ctx context.Context, account *models.Account) error
	IdentifierTaken(ctx context.Context, username, email string) (bool, error)
	FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdatePasswordHash(ctx context.Context, email, newHash string) error
}
