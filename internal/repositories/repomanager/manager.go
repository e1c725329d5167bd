package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/samba/internal/dbx"
	"github.com/dmitrijs2005/samba/internal/repositories/messages"
	"github.com/dmitrijs2005/samba/internal/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Messages(db dbx.DBTX) messages.Repository
}
