package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/standup/internal/dbx"
	"github.com/dmitrijs2005/standup/internal/server/repositories/exports"
	"github.com/dmitrijs2005/standup/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/standup/internal/server/repositories/standups"
	"github.com/dmitrijs2005/standup/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Standups(db dbx.DBTX) standups.Repository
	Exports(db dbx.DBTX) exports.Repository
}
