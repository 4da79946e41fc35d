package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/mailx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/auth"
	"github.com/Sandhya175/GrowlioBackend/internal/server/config"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/repomanager"
)

// resetSecretBytes is the entropy of a reset secret; hex-encoded it doubles
// in length.
const resetSecretBytes = 32

// PasswordResetService implements the single-use, time-boxed reset flow:
// - RequestReset: mint a secret, store it keyed by email, send the link
// - Redeem: atomically verify, rewrite the password, and consume the secret
type PasswordResetService struct {
	db                         *sql.DB
	repomanager                repomanager.RepositoryManager
	sender                     mailx.Sender
	hasher                     *auth.PasswordHasher
	resetTokenValidityDuration time.Duration
	resetURLBase               string
}

// NewPasswordResetService constructs a PasswordResetService using
// repositories, the mail sender, and server config.
func NewPasswordResetService(db *sql.DB, m repomanager.RepositoryManager, sender mailx.Sender, cfg *config.Config) *PasswordResetService {
	return &PasswordResetService{
		db:                         db,
		repomanager:                m,
		sender:                     sender,
		hasher:                     auth.NewPasswordHasher(cfg.BcryptCost),
		resetTokenValidityDuration: cfg.ResetTokenValidityDuration,
		resetURLBase:               cfg.ResetURLBase,
	}
}

// RequestReset mints a fresh secret for the account registered under email
// and mails the reset link. A repeat request replaces the pending secret, so
// only the latest link works. Unknown emails yield ErrNotFound; a mail
// failure yields ErrDeliveryFailed, with the stored secret left in place so
// a retry simply replaces it.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	accountRepo := s.repomanager.Accounts(s.db)
	account, err := accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error finding account: %w", err)
	}

	secret, err := common.MakeRandHexString(resetSecretBytes)
	if err != nil {
		return fmt.Errorf("error generating secret: %w", err)
	}

	resetRepo := s.repomanager.PasswordResets(s.db)
	expiresAt := time.Now().Add(s.resetTokenValidityDuration)
	if err := resetRepo.Upsert(ctx, account.Email, secret, expiresAt); err != nil {
		return fmt.Errorf("error storing reset request: %w", err)
	}

	subject := "Password Reset Request"
	body := fmt.Sprintf("You requested a password reset.\n\nOpen the link below to choose a new password. The link expires in %s and can be used once.\n\n%s%s\n\nIf you did not request this, you can ignore this email.",
		s.resetTokenValidityDuration, s.resetURLBase, secret)
	if err := s.sender.Send(ctx, account.Email, subject, body); err != nil {
		return common.ErrDeliveryFailed
	}
	return nil
}

// Redeem consumes a reset secret and rewrites the account's password. The
// lookup, update, and delete run in one transaction with the reset row
// locked, so of two concurrent redeemers exactly one succeeds and the other
// observes ErrInvalidToken. Expired secrets yield ErrTokenExpired.
func (s *PasswordResetService) Redeem(ctx context.Context, secret, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return common.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		resetRepo := s.repomanager.PasswordResets(tx)

		req, err := resetRepo.FindByTokenForUpdate(ctx, secret)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrInvalidToken
			}
			return fmt.Errorf("error finding reset request: %w", err)
		}
		if req.ExpiresAt.Before(time.Now()) {
			return common.ErrTokenExpired
		}

		accountRepo := s.repomanager.Accounts(tx)
		if err := accountRepo.UpdatePasswordHash(ctx, req.Email, hash); err != nil {
			return fmt.Errorf("error updating password: %w", err)
		}
		if err := resetRepo.DeleteByEmail(ctx, req.Email); err != nil {
			return fmt.Errorf("error deleting reset request: %w", err)
		}
		return nil
	})
}
