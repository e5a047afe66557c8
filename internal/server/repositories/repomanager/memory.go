package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps all data in process memory. Transactions
// are serialised, so a read-then-write inside WithTx cannot interleave
// with another one.
type InMemoryRepositoryManager struct {
	txMu  sync.Mutex
	users *users.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

// UserStore exposes the concrete store, e.g. for counting records.
func (m *InMemoryRepositoryManager) UserStore() *users.MemoryRepository { return m.users }

// WithTx calls fn with a nil handle while holding the transaction lock.
func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, nil)
}

func (m *InMemoryRepositoryManager) Ping(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Close() error { return nil }
