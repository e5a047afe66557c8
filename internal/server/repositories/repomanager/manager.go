package repomanager

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a connection or a
// transaction and owns the underlying storage.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users(db dbx.DBTX) users.Repository
	// WithTx runs fn atomically; repositories obtained from tx inside fn
	// take part in the same unit of work.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
	Close() error
}
