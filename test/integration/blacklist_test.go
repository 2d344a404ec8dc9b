//go:build integration

package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-social-network/internal/database"
	"go-social-network/internal/model"
	"go-social-network/internal/repository"
)

func newBlacklistRepo(t *testing.T) *repository.BlacklistRepository {
	t.Helper()

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, databaseURL, database.PoolSettings{MaxConns: 4, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))
	return repository.NewBlacklistRepository(db.Pool)
}

func TestBlacklistInsertIsIdempotent(t *testing.T) {
	repo := newBlacklistRepo(t)
	ctx := context.Background()

	token := "opaque-" + uniqueEmail(t)
	expiresAt := time.Now().Add(time.Hour).UTC()

	require.NoError(t, repo.Insert(ctx, token, expiresAt))
	require.ErrorIs(t, repo.Insert(ctx, token, expiresAt), model.ErrTokenAlreadyRevoked)

	revoked, err := repo.Contains(ctx, token)
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestBlacklistPruneExpired(t *testing.T) {
	repo := newBlacklistRepo(t)
	ctx := context.Background()

	expired := "expired-" + uniqueEmail(t)
	live := "live-" + uniqueEmail(t)

	require.NoError(t, repo.Insert(ctx, expired, time.Now().Add(-time.Hour).UTC()))
	require.NoError(t, repo.Insert(ctx, live, time.Now().Add(time.Hour).UTC()))

	pruned, err := repo.PruneExpired(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, pruned, int64(1))

	revoked, err := repo.Contains(ctx, expired)
	require.NoError(t, err)
	require.False(t, revoked)

	revoked, err = repo.Contains(ctx, live)
	require.NoError(t, err)
	require.True(t, revoked)
}
