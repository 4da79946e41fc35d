package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/accounts"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/businessentities"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/dashboard"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/insurance"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/members"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/nominees"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/passwordresets"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/sessiontokens"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	m := NewPostgresRepositoryManager()
	var _ RepositoryManager = m
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &PostgresRepositoryManager{}

	var _ accounts.Repository = m.Accounts(db)
	var _ sessiontokens.Repository = m.SessionTokens(db)
	var _ passwordresets.Repository = m.PasswordResets(db)
	var _ members.Repository = m.Members(db)
	var _ nominees.Repository = m.Nominees(db)
	var _ insurance.Repository = m.Insurance(db)
	var _ businessentities.Repository = m.BusinessEntities(db)
	var _ dashboard.Repository = m.Dashboard(db)

	if m.Accounts(db) == nil || m.SessionTokens(db) == nil || m.PasswordResets(db) == nil {
		t.Fatal("factory returned nil repository")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
