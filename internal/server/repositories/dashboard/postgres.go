// Package dashboard provides read access to the dashboard tables.
package dashboard

import (
	"context"
	"fmt"

	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListOverview(ctx context.Context, accountID string) ([]models.PortfolioOverview, error) {
	query := `
		SELECT title, value, COALESCE(icon, ''), COALESCE(icon_color, ''), COALESCE(extra, '')
		FROM portfolio_overviews
		WHERE account_id = $1
		ORDER BY title
	`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.PortfolioOverview
	for rows.Next() {
		var o models.PortfolioOverview
		if err = rows.Scan(&o.Title, &o.Value, &o.Icon, &o.IconColor, &o.Extra); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListTransactions(ctx context.Context, accountID string, limit int) ([]models.Transaction, error) {
	query := `
		SELECT asset, type, amount, date, status
		FROM transactions
		WHERE account_id = $1
		ORDER BY date DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err = rows.Scan(&t.Asset, &t.Type, &t.Amount, &t.Date, &t.Status); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
