// Package accounts provides the PostgreSQL-backed credential store.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
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

// Create inserts a new account row. A unique-constraint violation on
// username or email maps to common.ErrConflict; this is the authoritative
// guard against concurrent signups that both passed IdentifierTaken.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, username, email, password_hash, is_active, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Username, account.Email, account.PasswordHash, account.IsActive, account.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return common.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// IdentifierTaken reports whether any account already uses the username or
// the email. The check-then-insert window is a documented race; Create
// still rejects the loser.
func (r *PostgresRepository) IdentifierTaken(ctx context.Context, username, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM accounts WHERE username = $1 OR email = $2
		)
	`
	var taken bool
	if err := r.db.QueryRowContext(ctx, query, username, email).Scan(&taken); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return taken, nil
}

// FindByIdentifier resolves an account by username or email.
func (r *PostgresRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	query := `
		SELECT id, username, email, password_hash, is_active, role
		FROM accounts
		WHERE username = $1 OR email = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, identifier))
}

// FindByEmail resolves an account by email only.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, username, email, password_hash, is_active, role
		FROM accounts
		WHERE email = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// UpdatePasswordHash replaces the stored digest for the account with the
// given email. Idempotent; updating an absent email affects no rows.
func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, email, newHash string) error {
	query := `
		UPDATE accounts SET password_hash = $1
		WHERE email = $2
	`
	if _, err := r.db.ExecContext(ctx, query, newHash, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(&account.ID, &account.Username, &account.Email,
		&account.PasswordHash, &account.IsActive, &account.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}
