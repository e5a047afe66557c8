package repomanager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_WithTx_SerialisesCheckThenInsert(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
				repo := m.Users(tx)
				if _, err := repo.GetUserByEmail(ctx, "alice@example.com"); !errors.Is(err, common.ErrorNotFound) {
					return common.ErrorAlreadyExists
				}
				_, err := repo.Create(ctx, &models.User{Email: "alice@example.com"})
				return err
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, m.UserStore().Count())
}

func TestInMemory_NoOps(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background()))
	require.NoError(t, m.Ping(context.Background()))
	require.NoError(t, m.Close())
}
