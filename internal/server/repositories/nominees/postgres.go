// Package nominees provides the PostgreSQL-backed store for member nominees
// and the guardians attached to minor nominees.
package nominees

import (
	"context"
	"fmt"
	"strings"

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

func (r *PostgresRepository) Insert(ctx context.Context, n *models.Nominee) error {
	query := `
		INSERT INTO nominees (id, member_id, category, demat_account_no, trading_account_no,
		                      broker_name, broker_code, nominee_name, relationship, date_of_birth,
		                      percentage_share, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query, n.ID, n.MemberID, n.Category, n.DematAccountNo,
		n.TradingAccountNo, n.BrokerName, n.BrokerCode, n.NomineeName, n.Relationship,
		n.DateOfBirth, n.PercentageShare, n.Address)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) InsertGuardian(ctx context.Context, g *models.Guardian) error {
	query := `
		INSERT INTO guardians (id, nominee_id, guardian_name, relationship, contact_number, address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, g.ID, g.NomineeID, g.GuardianName, g.Relationship,
		g.ContactNumber, g.Address)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByMember returns the member's nominees with guardians attached. Two
// queries instead of a join keeps the scan code simple.
func (r *PostgresRepository) ListByMember(ctx context.Context, memberID string) ([]models.Nominee, error) {
	query := `
		SELECT id, member_id, category, demat_account_no, trading_account_no, broker_name,
		       broker_code, nominee_name, relationship, date_of_birth, percentage_share, address
		FROM nominees
		WHERE member_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Nominee
	ids := make([]string, 0)
	for rows.Next() {
		var n models.Nominee
		err = rows.Scan(&n.ID, &n.MemberID, &n.Category, &n.DematAccountNo, &n.TradingAccountNo,
			&n.BrokerName, &n.BrokerCode, &n.NomineeName, &n.Relationship, &n.DateOfBirth,
			&n.PercentageShare, &n.Address)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
		ids = append(ids, n.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(result) == 0 {
		return result, nil
	}

	guardians, err := r.guardiansByNominee(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		if g, ok := guardians[result[i].ID]; ok {
			result[i].Guardian = g
		}
	}
	return result, nil
}

func (r *PostgresRepository) guardiansByNominee(ctx context.Context, nomineeIDs []string) (map[string]*models.Guardian, error) {
	query := `
		SELECT id, nominee_id, guardian_name, relationship, contact_number, address
		FROM guardians
		WHERE nominee_id = ANY($1::uuid[])
	`
	// Array literal rather than a slice arg keeps this portable across
	// database/sql drivers.
	rows, err := r.db.QueryContext(ctx, query, "{"+strings.Join(nomineeIDs, ",")+"}")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	byNominee := make(map[string]*models.Guardian)
	for rows.Next() {
		g := &models.Guardian{}
		err = rows.Scan(&g.ID, &g.NomineeID, &g.GuardianName, &g.Relationship, &g.ContactNumber, &g.Address)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		byNominee[g.NomineeID] = g
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return byNominee, nil
}

// Delete removes the nominee if it belongs to memberID. Guardians go with it
// via the FK cascade. Returns common.ErrNotFound when no row matched.
func (r *PostgresRepository) Delete(ctx context.Context, id, memberID string) error {
	query := `
		DELETE FROM nominees
		WHERE id = $1 AND member_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, memberID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
