package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
	accountsrepo "github.com/Sandhya175/GrowlioBackend/internal/server/repositories/accounts"
	businessentitiesrepo "github.com/Sandhya175/GrowlioBackend/internal/server/repositories/businessentities"
	dashboardrepo "github.com/Sandhya175/GrowlioBackend/internal/server/repositories/dashboard"
	insurancerepo "github.com/Sandhya175/GrowlioBackend/internal/server/repositories/insurance"
	membersrepo "github.com/Sandhya175/GrowlioBackend/internal/server/repositories/members"
	nomineesrepo "github.com/Sandhya175/GrowlioBackend/internal/server/repositories/nominees"
	passwordresetsrepo "github.com/Sandhya175/GrowlioBackend/internal/server/repositories/passwordresets"
	sessiontokensrepo "github.com/Sandhya175/GrowlioBackend/internal/server/repositories/sessiontokens"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeAccountsRepo struct {
	createErr error
	created   *models.Account

	takenOut bool
	takenErr error

	findOut *models.Account
	findErr error

	findByEmailOut *models.Account
	findByEmailErr error

	updatedEmail string
	updatedHash  string
	updateErr    error
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) error {
	f.created = a
	return f.createErr
}

func (f *fakeAccountsRepo) IdentifierTaken(ctx context.Context, username, email string) (bool, error) {
	return f.takenOut, f.takenErr
}

func (f *fakeAccountsRepo) FindByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeAccountsRepo) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.findByEmailErr != nil {
		return nil, f.findByEmailErr
	}
	return f.findByEmailOut, nil
}

func (f *fakeAccountsRepo) UpdatePasswordHash(ctx context.Context, email, newHash string) error {
	f.updatedEmail = email
	f.updatedHash = newHash
	return f.updateErr
}

type fakeSessionTokensRepo struct {
	createErr     error
	createdToken  string
	createdForID  string
	createdExpiry time.Time

	findOut *models.SessionToken
	findErr error

	delErr       error
	deletedToken string

	delExpiredN   int64
	delExpiredErr error
}

func (f *fakeSessionTokensRepo) Create(ctx context.Context, accountID, token string, expiresAt time.Time) error {
	f.createdForID = accountID
	f.createdToken = token
	f.createdExpiry = expiresAt
	return f.createErr
}

func (f *fakeSessionTokensRepo) Find(ctx context.Context, token string) (*models.SessionToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeSessionTokensRepo) Delete(ctx context.Context, token string) error {
	f.deletedToken = token
	return f.delErr
}

func (f *fakeSessionTokensRepo) DeleteExpired(ctx context.Context) (int64, error) {
	return f.delExpiredN, f.delExpiredErr
}

type fakePasswordResetsRepo struct {
	upsertErr    error
	upsertEmail  string
	upsertToken  string
	upsertExpiry time.Time

	findOut *models.PasswordResetRequest
	findErr error

	delErr       error
	deletedEmail string

	// When stateful is set, lookups match against row and DeleteByEmail
	// consumes it, so a second redemption of the same secret misses.
	stateful bool
	row      *models.PasswordResetRequest
}

func (f *fakePasswordResetsRepo) Upsert(ctx context.Context, email, token string, expiresAt time.Time) error {
	f.upsertEmail = email
	f.upsertToken = token
	f.upsertExpiry = expiresAt
	return f.upsertErr
}

func (f *fakePasswordResetsRepo) FindByTokenForUpdate(ctx context.Context, token string) (*models.PasswordResetRequest, error) {
	if f.stateful {
		if f.row == nil || f.row.Token != token {
			return nil, common.ErrNotFound
		}
		return f.row, nil
	}
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakePasswordResetsRepo) DeleteByEmail(ctx context.Context, email string) error {
	f.deletedEmail = email
	if f.stateful {
		f.row = nil
	}
	return f.delErr
}

type fakeMembersRepo struct {
	findIDOut string
	findIDErr error

	insertErr error
	inserted  *models.Member

	updateErr error
	updated   *models.Member

	getOut *models.Member
	getErr error
}

func (f *fakeMembersRepo) FindIDByAccount(ctx context.Context, accountID string) (string, error) {
	if f.findIDErr != nil {
		return "", f.findIDErr
	}
	return f.findIDOut, nil
}

func (f *fakeMembersRepo) Insert(ctx context.Context, m *models.Member) error {
	f.inserted = m
	return f.insertErr
}

func (f *fakeMembersRepo) Update(ctx context.Context, m *models.Member) error {
	f.updated = m
	return f.updateErr
}

func (f *fakeMembersRepo) GetByAccount(ctx context.Context, accountID string) (*models.Member, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeNomineesRepo struct {
	insertErr        error
	inserted         *models.Nominee
	insertedGuardian *models.Guardian
	guardianErr      error

	listOut []models.Nominee
	listErr error

	delErr error
}

func (f *fakeNomineesRepo) Insert(ctx context.Context, n *models.Nominee) error {
	f.inserted = n
	return f.insertErr
}

func (f *fakeNomineesRepo) InsertGuardian(ctx context.Context, g *models.Guardian) error {
	f.insertedGuardian = g
	return f.guardianErr
}

func (f *fakeNomineesRepo) ListByMember(ctx context.Context, memberID string) ([]models.Nominee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeNomineesRepo) Delete(ctx context.Context, id, memberID string) error {
	return f.delErr
}

type fakeInsuranceRepo struct {
	findIDOut string
	findIDErr error

	insertErr error
	inserted  *models.InsuranceInfo

	updateErr error
	updated   *models.InsuranceInfo

	getOut *models.InsuranceInfo
	getErr error
}

func (f *fakeInsuranceRepo) FindIDByMember(ctx context.Context, memberID string) (string, error) {
	if f.findIDErr != nil {
		return "", f.findIDErr
	}
	return f.findIDOut, nil
}

func (f *fakeInsuranceRepo) Insert(ctx context.Context, info *models.InsuranceInfo) error {
	f.inserted = info
	return f.insertErr
}

func (f *fakeInsuranceRepo) Update(ctx context.Context, info *models.InsuranceInfo) error {
	f.updated = info
	return f.updateErr
}

func (f *fakeInsuranceRepo) GetByMember(ctx context.Context, memberID string) (*models.InsuranceInfo, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeBusinessEntitiesRepo struct {
	findIDOut string
	findIDErr error

	insertErr error
	inserted  *models.BusinessEntity

	updateErr error
	updated   *models.BusinessEntity

	getOut *models.BusinessEntity
	getErr error

	delStakeholdersErr   error
	insertStakeholderErr error
	insertedStakeholders []*models.Stakeholder

	listOut []models.Stakeholder
	listErr error
}

func (f *fakeBusinessEntitiesRepo) FindIDByAccount(ctx context.Context, accountID string) (string, error) {
	if f.findIDErr != nil {
		return "", f.findIDErr
	}
	return f.findIDOut, nil
}

func (f *fakeBusinessEntitiesRepo) Insert(ctx context.Context, e *models.BusinessEntity) error {
	f.inserted = e
	return f.insertErr
}

func (f *fakeBusinessEntitiesRepo) Update(ctx context.Context, e *models.BusinessEntity) error {
	f.updated = e
	return f.updateErr
}

func (f *fakeBusinessEntitiesRepo) GetByAccount(ctx context.Context, accountID string) (*models.BusinessEntity, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeBusinessEntitiesRepo) InsertStakeholder(ctx context.Context, s *models.Stakeholder) error {
	f.insertedStakeholders = append(f.insertedStakeholders, s)
	return f.insertStakeholderErr
}

func (f *fakeBusinessEntitiesRepo) DeleteStakeholders(ctx context.Context, entityID string) error {
	return f.delStakeholdersErr
}

func (f *fakeBusinessEntitiesRepo) ListStakeholders(ctx context.Context, entityID string) ([]models.Stakeholder, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeDashboardRepo struct {
	overviewOut []models.PortfolioOverview
	overviewErr error

	transactionsOut []models.Transaction
	transactionsErr error
}

func (f *fakeDashboardRepo) ListOverview(ctx context.Context, accountID string) ([]models.PortfolioOverview, error) {
	if f.overviewErr != nil {
		return nil, f.overviewErr
	}
	return f.overviewOut, nil
}

func (f *fakeDashboardRepo) ListTransactions(ctx context.Context, accountID string, limit int) ([]models.Transaction, error) {
	if f.transactionsErr != nil {
		return nil, f.transactionsErr
	}
	return f.transactionsOut, nil
}

type fakeRepoManager struct {
	accounts  *fakeAccountsRepo
	sessions  *fakeSessionTokensRepo
	resets    *fakePasswordResetsRepo
	members   *fakeMembersRepo
	nominees  *fakeNomineesRepo
	insurance *fakeInsuranceRepo
	entities  *fakeBusinessEntitiesRepo
	dashboard *fakeDashboardRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository { return m.accounts }
func (m *fakeRepoManager) SessionTokens(db dbx.DBTX) sessiontokensrepo.Repository {
	return m.sessions
}
func (m *fakeRepoManager) PasswordResets(db dbx.DBTX) passwordresetsrepo.Repository {
	return m.resets
}
func (m *fakeRepoManager) Members(db dbx.DBTX) membersrepo.Repository   { return m.members }
func (m *fakeRepoManager) Nominees(db dbx.DBTX) nomineesrepo.Repository { return m.nominees }
func (m *fakeRepoManager) Insurance(db dbx.DBTX) insurancerepo.Repository {
	return m.insurance
}
func (m *fakeRepoManager) BusinessEntities(db dbx.DBTX) businessentitiesrepo.Repository {
	return m.entities
}
func (m *fakeRepoManager) Dashboard(db dbx.DBTX) dashboardrepo.Repository { return m.dashboard }
