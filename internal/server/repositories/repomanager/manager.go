package repomanager

import (
	"context"
	"database/sql"

	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/accounts"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/businessentities"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/dashboard"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/insurance"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/members"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/nominees"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/passwordresets"
	"github.com/Sandhya175/GrowlioBackend/internal/server/repositories/sessiontokens"
)

// RepositoryManager vends repositories bound to an arbitrary DBTX, so the
// same constructors serve both plain connections and transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	SessionTokens(db dbx.DBTX) sessiontokens.Repository
	PasswordResets(db dbx.DBTX) passwordresets.Repository
	Members(db dbx.DBTX) members.Repository
	Nominees(db dbx.DBTX) nominees.Repository
	Insurance(db dbx.DBTX) insurance.Repository
	BusinessEntities(db dbx.DBTX) businessentities.Repository
	Dashboard(db dbx.DBTX) dashboard.Repository
}
