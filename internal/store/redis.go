package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/gridsearch/layout"
)

// keyPrefix namespaces layout keys.
const keyPrefix = "gridsearch:layout:"

// RedisStore keeps JSON-encoded snapshots in Redis with a TTL.
// Writes and deletes of one key are serialized through a redsync mutex.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisStore initializes a RedisStore with the provided Redis client and TTL.
func NewRedisStore(client *redis.Client, ttlSeconds int) *RedisStore {
	return &RedisStore{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Save stores s under id and (re)sets its expiration.
func (rs *RedisStore) Save(ctx context.Context, id uuid.UUID, s layout.Snapshot) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: encode layout: %w", err)
	}

	key := layoutKey(id)
	mutex := rs.locker.NewMutex(key + ":lock")
	if err = mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("store: lock %s: %w", key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	return rs.client.Set(ctx, key, payload, rs.ttl).Err()
}

// Load returns the snapshot stored under id.
func (rs *RedisStore) Load(ctx context.Context, id uuid.UUID) (layout.Snapshot, error) {
	payload, err := rs.client.Get(ctx, layoutKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return layout.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return layout.Snapshot{}, err
	}

	var s layout.Snapshot
	if err = json.Unmarshal(payload, &s); err != nil {
		return layout.Snapshot{}, fmt.Errorf("store: decode layout: %w", err)
	}
	return s, nil
}

// Delete removes id.
func (rs *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	key := layoutKey(id)
	mutex := rs.locker.NewMutex(key + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("store: lock %s: %w", key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	return rs.client.Del(ctx, key).Err()
}

func layoutKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}
