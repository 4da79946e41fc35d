// Package passwordresets provides the PostgreSQL-backed store for pending
// password-reset requests. At most one request is live per email: a new
// request replaces the existing row, making the old secret unredeemable.
package passwordresets

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

// Upsert inserts the request or, if a row for the email exists, replaces its
// token and expiry in place.
func (r *PostgresRepository) Upsert(ctx context.Context, email, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO password_resets (email, token, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at
	`
	if _, err := r.db.ExecContext(ctx, query, email, token, expiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindByTokenForUpdate returns the request matching token, locking the row
// until the surrounding transaction ends. A concurrent redeemer blocks here
// and, after the winner deletes the row, observes common.ErrNotFound.
func (r *PostgresRepository) FindByTokenForUpdate(ctx context.Context, token string) (*models.PasswordResetRequest, error) {
	query := `
		SELECT email, token, expires_at
		FROM password_resets
		WHERE token = $1
		FOR UPDATE
	`
	req := &models.PasswordResetRequest{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&req.Email, &req.Token, &req.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return req, nil
}

// DeleteByEmail removes the pending request for email, enforcing single use.
func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `
		DELETE FROM password_resets
		WHERE email = $1
	`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
