package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ProfileService manages the profile data hanging off an account: the member
// document, nominees with optional guardians, insurance portal details, and
// the business entity with its stakeholders.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

// SaveMember upserts the account's member document. The locate-then-write
// runs in a transaction so concurrent saves cannot create two rows for one
// account.
func (s *ProfileService) SaveMember(ctx context.Context, accountID string, m *models.Member) (*models.Member, error) {
	m.AccountID = accountID

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Members(tx)

		id, err := repo.FindIDByAccount(ctx, accountID)
		switch {
		case err == nil:
			m.ID = id
			return repo.Update(ctx, m)
		case errors.Is(err, common.ErrNotFound):
			m.ID = uuid.NewString()
			return repo.Insert(ctx, m)
		default:
			return err
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error saving member: %w", err)
	}
	return m, nil
}

// GetMember returns the account's member document, or ErrNotFound when the
// profile has not been filled in yet.
func (s *ProfileService) GetMember(ctx context.Context, accountID string) (*models.Member, error) {
	repo := s.repomanager.Members(s.db)
	m, err := repo.GetByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error finding member: %w", err)
	}
	return m, nil
}

// AddNominee registers a nominee against the account's member profile. When
// a guardian is attached (minor nominees), both rows land in one
// transaction.
func (s *ProfileService) AddNominee(ctx context.Context, accountID string, n *models.Nominee) (*models.Nominee, error) {
	memberID, err := s.memberID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	n.ID = uuid.NewString()
	n.MemberID = memberID
	if n.Guardian != nil {
		n.Guardian.ID = uuid.NewString()
		n.Guardian.NomineeID = n.ID
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Nominees(tx)
		if err := repo.Insert(ctx, n); err != nil {
			return err
		}
		if n.Guardian != nil {
			return repo.InsertGuardian(ctx, n.Guardian)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error saving nominee: %w", err)
	}
	return n, nil
}

// AddGuardian attaches a guardian to one of the account's existing nominees.
// A nominee id belonging to another member yields ErrNotFound.
func (s *ProfileService) AddGuardian(ctx context.Context, accountID string, g *models.Guardian) (*models.Guardian, error) {
	memberID, err := s.memberID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Nominees(s.db)
	owned, err := repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("error listing nominees: %w", err)
	}
	found := false
	for i := range owned {
		if owned[i].ID == g.NomineeID {
			found = true
			break
		}
	}
	if !found {
		return nil, common.ErrNotFound
	}

	g.ID = uuid.NewString()
	if err := repo.InsertGuardian(ctx, g); err != nil {
		return nil, fmt.Errorf("error saving guardian: %w", err)
	}
	return g, nil
}

// ListNominees returns the account's nominees with guardians attached. An
// account without a member profile has no nominees.
func (s *ProfileService) ListNominees(ctx context.Context, accountID string) ([]models.Nominee, error) {
	memberID, err := s.memberID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return []models.Nominee{}, nil
		}
		return nil, err
	}

	repo := s.repomanager.Nominees(s.db)
	result, err := repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("error listing nominees: %w", err)
	}
	return result, nil
}

// DeleteNominee removes one of the account's nominees. Deleting a nominee
// that belongs to another member yields ErrNotFound.
func (s *ProfileService) DeleteNominee(ctx context.Context, accountID, nomineeID string) error {
	memberID, err := s.memberID(ctx, accountID)
	if err != nil {
		return err
	}

	repo := s.repomanager.Nominees(s.db)
	if err := repo.Delete(ctx, nomineeID, memberID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error deleting nominee: %w", err)
	}
	return nil
}

// SaveInsurance upserts the member's insurance portal details.
func (s *ProfileService) SaveInsurance(ctx context.Context, accountID string, info *models.InsuranceInfo) (*models.InsuranceInfo, error) {
	memberID, err := s.memberID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	info.MemberID = memberID

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Insurance(tx)

		id, err := repo.FindIDByMember(ctx, memberID)
		switch {
		case err == nil:
			info.ID = id
			return repo.Update(ctx, info)
		case errors.Is(err, common.ErrNotFound):
			info.ID = uuid.NewString()
			return repo.Insert(ctx, info)
		default:
			return err
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error saving insurance info: %w", err)
	}
	return info, nil
}

// GetInsurance returns the member's insurance portal details.
func (s *ProfileService) GetInsurance(ctx context.Context, accountID string) (*models.InsuranceInfo, error) {
	memberID, err := s.memberID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Insurance(s.db)
	info, err := repo.GetByMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error finding insurance info: %w", err)
	}
	return info, nil
}

// SaveBusinessEntity upserts the account's company profile and replaces its
// stakeholder set wholesale, all in one transaction.
func (s *ProfileService) SaveBusinessEntity(ctx context.Context, accountID string, e *models.BusinessEntity, stakeholders []models.Stakeholder) (*models.BusinessEntity, error) {
	e.AccountID = accountID

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.BusinessEntities(tx)

		id, err := repo.FindIDByAccount(ctx, accountID)
		switch {
		case err == nil:
			e.ID = id
			if err := repo.Update(ctx, e); err != nil {
				return err
			}
		case errors.Is(err, common.ErrNotFound):
			e.ID = uuid.NewString()
			if err := repo.Insert(ctx, e); err != nil {
				return err
			}
		default:
			return err
		}

		if err := repo.DeleteStakeholders(ctx, e.ID); err != nil {
			return err
		}
		for i := range stakeholders {
			stakeholders[i].ID = uuid.NewString()
			stakeholders[i].EntityID = e.ID
			if err := repo.InsertStakeholder(ctx, &stakeholders[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error saving business entity: %w", err)
	}
	return e, nil
}

// AddStakeholder registers a single stakeholder against the account's
// business entity. An account without an entity yields ErrNotFound.
func (s *ProfileService) AddStakeholder(ctx context.Context, accountID string, sh *models.Stakeholder) (*models.Stakeholder, error) {
	repo := s.repomanager.BusinessEntities(s.db)

	entityID, err := repo.FindIDByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error finding business entity: %w", err)
	}

	sh.ID = uuid.NewString()
	sh.EntityID = entityID
	if err := repo.InsertStakeholder(ctx, sh); err != nil {
		return nil, fmt.Errorf("error saving stakeholder: %w", err)
	}
	return sh, nil
}

// GetBusinessEntity returns the account's company profile with its
// stakeholders.
func (s *ProfileService) GetBusinessEntity(ctx context.Context, accountID string) (*models.BusinessEntity, []models.Stakeholder, error) {
	repo := s.repomanager.BusinessEntities(s.db)

	e, err := repo.GetByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrNotFound
		}
		return nil, nil, fmt.Errorf("error finding business entity: %w", err)
	}

	stakeholders, err := repo.ListStakeholders(ctx, e.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing stakeholders: %w", err)
	}
	return e, stakeholders, nil
}

// MemberID resolves the account's member row id. Handlers use it to check
// that a member id in the request path belongs to the caller.
func (s *ProfileService) MemberID(ctx context.Context, accountID string) (string, error) {
	return s.memberID(ctx, accountID)
}

// memberID resolves the account's member row, mapping a missing profile to
// ErrNotFound.
func (s *ProfileService) memberID(ctx context.Context, accountID string) (string, error) {
	repo := s.repomanager.Members(s.db)
	id, err := repo.FindIDByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("error finding member: %w", err)
	}
	return id, nil
}
