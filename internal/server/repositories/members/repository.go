package members

import (
	"context"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// Repository persists member profile documents. Saves are an explicit
// locate-then-branch upsert: the service finds the existing row id inside a
// transaction and calls Insert or Update accordingly.
type Repository interface {
	FindIDByAccount(ctx context.Context, accountID string) (string, error)
	Insert(ctx context.Context, m *models.Member) error
	Update(ctx context.Context, m *models.Member) error
	GetByAccount(ctx context.Context, accountID string) (*models.Member, error)
}
