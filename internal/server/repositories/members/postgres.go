// Package members provides the PostgreSQL-backed store for member profile
// documents. Section payloads are stored as JSONB and treated as opaque.
package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindIDByAccount returns the member row id for accountID, or
// common.ErrNotFound.
func (r *PostgresRepository) FindIDByAccount(ctx context.Context, accountID string) (string, error) {
	query := `
		SELECT id FROM members
		WHERE account_id = $1
	`
	var id string
	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, m *models.Member) error {
	query := `
		INSERT INTO members (id, account_id, personal_info, stock_market_info, mutual_fund_info,
		                     bank_info, national_identity, vehicle_info, profile_image)
		VALUES ($1, $2, $3::jsonb, $4::jsonb, $5::jsonb, $6::jsonb, $7::jsonb, $8::jsonb, $9)
	`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.AccountID,
		[]byte(m.PersonalInfo), []byte(m.StockMarketInfo), []byte(m.MutualFundInfo),
		[]byte(m.BankInfo), []byte(m.NationalIdentity), []byte(m.VehicleInfo), m.ProfileImage)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.Member) error {
	query := `
		UPDATE members SET personal_info = $1::jsonb, stock_market_info = $2::jsonb,
		                   mutual_fund_info = $3::jsonb, bank_info = $4::jsonb,
		                   national_identity = $5::jsonb, vehicle_info = $6::jsonb,
		                   profile_image = $7, updated_at = now()
		WHERE id = $8
	`
	_, err := r.db.ExecContext(ctx, query,
		[]byte(m.PersonalInfo), []byte(m.StockMarketInfo), []byte(m.MutualFundInfo),
		[]byte(m.BankInfo), []byte(m.NationalIdentity), []byte(m.VehicleInfo), m.ProfileImage, m.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByAccount(ctx context.Context, accountID string) (*models.Member, error) {
	query := `
		SELECT id, account_id, COALESCE(personal_info, 'null'), COALESCE(stock_market_info, 'null'),
		       COALESCE(mutual_fund_info, 'null'), COALESCE(bank_info, 'null'),
		       COALESCE(national_identity, 'null'), COALESCE(vehicle_info, 'null'),
		       COALESCE(profile_image, ''), updated_at
		FROM members
		WHERE account_id = $1
	`
	m := &models.Member{}
	var personal, stock, mutual, bank, identity, vehicle []byte
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&m.ID, &m.AccountID,
		&personal, &stock, &mutual, &bank, &identity, &vehicle, &m.ProfileImage, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	m.PersonalInfo = personal
	m.StockMarketInfo = stock
	m.MutualFundInfo = mutual
	m.BankInfo = bank
	m.NationalIdentity = identity
	m.VehicleInfo = vehicle
	return m, nil
}
