package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleAccount() *models.Account {
	return &models.Account{
		ID:           "a-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
		Role:         "user",
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+accounts\s*\(id,\s*username,\s*email,\s*password_hash,\s*is_active,\s*role\)`

	mock.ExpectExec(q).
		WithArgs("a-1", "alice", "a@x.com", "$2a$10$hash", true, "user").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), sampleAccount()); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_UniqueViolationMapsToConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+accounts`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	err := repo.Create(context.Background(), sampleAccount())
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+accounts`).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), sampleAccount())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestIdentifierTaken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+EXISTS`).
		WithArgs("alice", "a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.IdentifierTaken(context.Background(), "alice", "a@x.com")
	if err != nil {
		t.Fatalf("IdentifierTaken error: %v", err)
	}
	if !taken {
		t.Fatalf("expected taken=true")
	}
}

func TestFindByIdentifier_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "is_active", "role"}).
		AddRow("a-1", "alice", "a@x.com", "$2a$10$hash", true, "user")
	mock.ExpectQuery(`SELECT\s+id,\s*username,\s*email,\s*password_hash,\s*is_active,\s*role\s+FROM\s+accounts\s+WHERE\s+username\s*=\s*\$1\s+OR\s+email\s*=\s*\$1`).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.FindByIdentifier(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByIdentifier error: %v", err)
	}
	if got.ID != "a-1" || got.Email != "a@x.com" {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestFindByIdentifier_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+accounts`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByIdentifier(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+accounts\s+WHERE\s+email`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@x.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestUpdatePasswordHash(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+accounts\s+SET\s+password_hash\s*=\s*\$1\s+WHERE\s+email\s*=\s*\$2`).
		WithArgs("$2a$10$new", "a@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePasswordHash(context.Background(), "a@x.com", "$2a$10$new"); err != nil {
		t.Fatalf("UpdatePasswordHash error: %v", err)
	}
}
