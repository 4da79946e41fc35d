package nominees

import (
	"context"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// Repository persists nominees and their minor-guardian rows. Insert and
// InsertGuardian are called inside one transaction so a nominee never lands
// without its guardian.
type Repository interface {
	Insert(ctx context.Context, n *models.Nominee) error
	InsertGuardian(ctx context.Context, g *models.Guardian) error
	ListByMember(ctx context.Context, memberID string) ([]models.Nominee, error)
	Delete(ctx context.Context, id, memberID string) error
}
