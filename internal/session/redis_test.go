package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, logger.Nop()), mr
}

func TestRedisStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := Record{ID: "token", User: &models.SessionUser{ID: 3, Username: "carol"}}
	require.NoError(t, store.Save(ctx, rec, time.Hour))

	loaded, err := store.Load(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "token", loaded.ID)
	require.NotNil(t, loaded.User)
	assert.Equal(t, int64(3), loaded.User.ID)
	assert.Equal(t, "carol", loaded.User.Username)
}

func TestRedisStore_LoadUnknownID(t *testing.T) {
	store, _ := newTestRedisStore(t)

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStore_RecordExpires(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	rec := Record{ID: "token", User: &models.SessionUser{ID: 3, Username: "carol"}}
	require.NoError(t, store.Save(ctx, rec, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStore_DeleteIsIdempotent(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	rec := Record{ID: "token", User: &models.SessionUser{ID: 3, Username: "carol"}}
	require.NoError(t, store.Save(ctx, rec, time.Hour))

	require.NoError(t, store.Delete(ctx, "token"))
	require.NoError(t, store.Delete(ctx, "token"))

	_, err := store.Load(ctx, "token")
	assert.ErrorIs(t, err, ErrNoSession)
}
