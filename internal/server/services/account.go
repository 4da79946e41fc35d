// Package services contains server-side business logic. This file implements
// AccountService, which handles signup, login, and issuing/validating session
// tokens backed by both a signed JWT and a server-stored row.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/server/auth"
	"github.com/Sandhya175/GrowlioBackend/internal/server/config"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Session is the result of a successful signup or login: the signed token
// plus the identity it asserts.
type Session struct {
	Token     string
	AccountID string
	Username  string
	Email     string
	Role      string
}

// AccountService provides authentication-related operations:
// - SignUp: create accounts and issue a first session
// - Login: verify credentials and issue a session
// - ValidateToken: check both the signature and the stored session row
// - Logout: revoke the stored session row
type AccountService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	hasher                       *auth.PasswordHasher
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                           db,
		repomanager:                  m,
		hasher:                       auth.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
	}
}

// SignUp creates an account and issues its first session. Password and
// confirmation must match; a taken username or email yields ErrConflict.
// The pre-check keeps the common case friendly, the database unique
// constraints stay authoritative under races.
func (s *AccountService) SignUp(ctx context.Context, username, email, password, confirmPassword string) (*Session, error) {
	if password != confirmPassword {
		return nil, common.ErrPasswordMismatch
	}

	repo := s.repomanager.Accounts(s.db)

	taken, err := repo.IdentifierTaken(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("error checking identifiers: %w", err)
	}
	if taken {
		return nil, common.ErrConflict
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		Role:         "user",
	}
	if err := repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return s.issueSession(ctx, account)
}

// Login verifies the identifier (username or email) and password and, on
// success, issues a session. Unknown identifiers, wrong passwords, and
// deactivated accounts all yield ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, identifier, password string) (*Session, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("error finding account: %w", err)
	}
	if !account.IsActive {
		return nil, common.ErrUnauthorized
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	return s.issueSession(ctx, account)
}

// ValidateToken checks both layers of a session token: the JWT signature and
// expiry, and the presence of a live stored row. A token whose row is gone
// was revoked and yields ErrInvalidToken even if the signature still
// verifies.
func (s *AccountService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.SessionTokens(s.db)
	stored, err := repo.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error finding session: %w", err)
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, common.ErrTokenExpired
	}

	return claims, nil
}

// Logout revokes the session by deleting its stored row. Revoking an already
// revoked token is a no-op.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	repo := s.repomanager.SessionTokens(s.db)
	if err := repo.Delete(ctx, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// PurgeExpiredTokens removes stored session rows past their expiry and
// returns how many were deleted.
func (s *AccountService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	repo := s.repomanager.SessionTokens(s.db)
	n, err := repo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("error purging sessions: %w", err)
	}
	return n, nil
}

func (s *AccountService) issueSession(ctx context.Context, account *models.Account) (*Session, error) {
	token, err := auth.GenerateToken(account.ID, account.Username, account.Email, account.Role,
		s.jwtSecret, s.sessionTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %w", err)
	}

	repo := s.repomanager.SessionTokens(s.db)
	expiresAt := time.Now().Add(s.sessionTokenValidityDuration)
	if err := repo.Create(ctx, account.ID, token, expiresAt); err != nil {
		return nil, fmt.Errorf("error storing session: %w", err)
	}

	return &Session{
		Token:     token,
		AccountID: account.ID,
		Username:  account.Username,
		Email:     account.Email,
		Role:      account.Role,
	}, nil
}
