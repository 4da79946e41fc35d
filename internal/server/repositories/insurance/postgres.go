// Package insurance provides the PostgreSQL-backed store for a member's
// insurance portal details. One row per member, replaced on save.
package insurance

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

func (r *PostgresRepository) FindIDByMember(ctx context.Context, memberID string) (string, error) {
	query := `
		SELECT id FROM insurance_info
		WHERE member_id = $1
	`
	var id string
	if err := r.db.QueryRowContext(ctx, query, memberID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, info *models.InsuranceInfo) error {
	query := `
		INSERT INTO insurance_info (id, member_id, email, login_id, password, portal_url,
		                            customer_policy_id, agent_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query, info.ID, info.MemberID, info.Email, info.LoginID,
		info.Password, info.PortalURL, info.CustomerPolicyID, info.AgentName)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, info *models.InsuranceInfo) error {
	query := `
		UPDATE insurance_info SET email = $1, login_id = $2, password = $3, portal_url = $4,
		                          customer_policy_id = $5, agent_name = $6, updated_at = now()
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query, info.Email, info.LoginID, info.Password,
		info.PortalURL, info.CustomerPolicyID, info.AgentName, info.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByMember(ctx context.Context, memberID string) (*models.InsuranceInfo, error) {
	query := `
		SELECT id, member_id, email, login_id, password, portal_url, customer_policy_id, agent_name
		FROM insurance_info
		WHERE member_id = $1
	`
	info := &models.InsuranceInfo{}
	err := r.db.QueryRowContext(ctx, query, memberID).Scan(&info.ID, &info.MemberID, &info.Email,
		&info.LoginID, &info.Password, &info.PortalURL, &info.CustomerPolicyID, &info.AgentName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return info, nil
}
