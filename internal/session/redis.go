package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// redisPayload is the JSON shape persisted under each session key.
// The id is the key itself and is not duplicated in the value.
type redisPayload struct {
	User *models.SessionUser `json:"user,omitempty"`
}

// RedisStore is the Redis-backed [Store] implementation. Record lifetime is
// delegated to Redis key expiry, so no sweeping is needed for this backend.
type RedisStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisStore constructs a [Store] backed by the provided Redis client.
func NewRedisStore(client *redis.Client, logger *logger.Logger) *RedisStore {
	logger.Debug().Msg("creating redis session store")
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Load implements [Store].
func (s *RedisStore) Load(ctx context.Context, id string) (Record, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, ErrNoSession
		}
		return Record{}, fmt.Errorf("redis session lookup failed: %w", err)
	}

	var payload redisPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Record{}, fmt.Errorf("decoding session record failed: %w", err)
	}

	return Record{ID: id, User: payload.User}, nil
}

// Save implements [Store].
func (s *RedisStore) Save(ctx context.Context, rec Record, ttl time.Duration) error {
	encoded, err := json.Marshal(redisPayload{User: rec.User})
	if err != nil {
		return fmt.Errorf("encoding session record failed: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+rec.ID, encoded, ttl).Err(); err != nil {
		return fmt.Errorf("redis session save failed: %w", err)
	}

	return nil
}

// Delete implements [Store]. Deleting an unknown id is a no-op.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis session delete failed: %w", err)
	}

	return nil
}
