package repomanager

import (
	"context"
	"database/sql"

	"github.com/shopcore/authsvc/internal/dbx"
	"github.com/shopcore/authsvc/internal/server/repositories/refreshtokens"
	"github.com/shopcore/authsvc/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (a connection pool or
// an open transaction) and exposes the schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
