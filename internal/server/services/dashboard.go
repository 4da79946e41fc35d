package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/repomanager"
)

// recentTransactionLimit caps the recent-activity table on the dashboard.
const recentTransactionLimit = 10

// DashboardService assembles the account's dashboard view.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// Get returns the dashboard for accountID. An account with no data yet gets
// empty slices rather than an error.
func (s *DashboardService) Get(ctx context.Context, accountID string) (*models.Dashboard, error) {
	repo := s.repomanager.Dashboard(s.db)

	overview, err := repo.ListOverview(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing overview: %w", err)
	}
	transactions, err := repo.ListTransactions(ctx, accountID, recentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	if overview == nil {
		overview = []models.PortfolioOverview{}
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return &models.Dashboard{Overview: overview, Transactions: transactions}, nil
}
