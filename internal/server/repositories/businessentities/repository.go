package businessentities

import (
	"context"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// Repository persists business entity profiles and their stakeholders. A save
// replaces the stakeholder set wholesale, so Insert/Update, DeleteStakeholders
// and InsertStakeholder run inside one transaction.
type Repository interface {
	FindIDByAccount(ctx context.Context, accountID string) (string, error)
	Insert(ctx context.Context, e *models.BusinessEntity) error
	Update(ctx context.Context, e *models.BusinessEntity) error
	GetByAccount(ctx context.Context, accountID string) (*models.BusinessEntity, error)
	InsertStakeholder(ctx context.Context, s *models.Stakeholder) error
	DeleteStakeholders(ctx context.Context, entityID string) error
	ListStakeholders(ctx context.Context, entityID string) ([]models.Stakeholder, error)
}
