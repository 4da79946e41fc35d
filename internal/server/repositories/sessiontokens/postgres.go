// Package sessiontokens provides the PostgreSQL-backed store for issued
// session tokens. A token row must exist for the matching JWT to validate;
// deleting the row revokes the token before its embedded expiry.
package sessiontokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a token row for accountID. Multiple live tokens per account
// are permitted.
func (r *PostgresRepository) Create(ctx context.Context, accountID, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO session_tokens (account_id, token, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, accountID, token, expiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Find returns the stored row for the given token string, or
// common.ErrNotFound.
func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.SessionToken, error) {
	query := `
		SELECT id, account_id, token, expires_at
		FROM session_tokens
		WHERE token = $1
	`
	st := &models.SessionToken{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&st.ID, &st.AccountID, &st.Token, &st.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return st, nil
}

// Delete removes a token row, revoking the token. Deleting an absent token
// is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	query := `
		DELETE FROM session_tokens
		WHERE token = $1
	`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteExpired prunes rows whose expiry has passed and reports how many
// were removed.
func (r *PostgresRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM session_tokens
		WHERE expires_at < now()
	`
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
