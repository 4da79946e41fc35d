// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/migrations"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/accounts"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/businessentities"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/dashboard"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/insurance"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/members"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/nominees"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/passwordresets"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/sessiontokens"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) SessionTokens(db dbx.DBTX) sessiontokens.Repository {
	return sessiontokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) PasswordResets(db dbx.DBTX) passwordresets.Repository {
	return passwordresets.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Members(db dbx.DBTX) members.Repository {
	return members.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Nominees(db dbx.DBTX) nominees.Repository {
	return nominees.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Insurance(db dbx.DBTX) insurance.Repository {
	return insurance.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) BusinessEntities(db dbx.DBTX) businessentities.Repository {
	return businessentities.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Dashboard(db dbx.DBTX) dashboard.Repository {
	return dashboard.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
