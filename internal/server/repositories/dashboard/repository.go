package dashboard

import (
	"context"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// Repository reads the per-account dashboard data.
type Repository interface {
	ListOverview(ctx context.Context, accountID string) ([]models.PortfolioOverview, error)
	ListTransactions(ctx context.Context, accountID string, limit int) ([]models.Transaction, error)
}
