package insurance

import (
	"context"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// Repository persists per-member insurance portal details.
type Repository interface {
	FindIDByMember(ctx context.Context, memberID string) (string, error)
	Insert(ctx context.Context, info *models.InsuranceInfo) error
	Update(ctx context.Context, info *models.InsuranceInfo) error
	GetByMember(ctx context.Context, memberID string) (*models.InsuranceInfo, error)
}
