// Package cache keeps a local Redis copy of server responses and the queue of
// changes made while the server was unreachable.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "cardflow:cache:"      // cardflow:cache:{key} -> JSON value
	pendingKey     = "cardflow:pending"     // hash of pending change id -> JSON change
	pendingSeqKey  = "cardflow:pending:seq" // INCR counter for pending change ids
)

// ErrMiss is returned by Get when nothing is cached under the key.
var ErrMiss = errors.New("cache miss")

// PendingChange is a mutation recorded while offline. It is stored for later
// inspection; nothing replays it automatically.
type PendingChange struct {
	ID       int64           `json:"id"`
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body,omitempty"`
	QueuedAt time.Time       `json:"queued_at"`
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps client. A ttl of zero keeps entries until overwritten.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Put stores value as JSON under key.
func (c *RedisCache) Put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache %s: %w", key, err)
	}
	return nil
}

// Get decodes the value cached under key into dest.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("failed to read cache %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal cache %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, cacheKeyPrefix+key).Err()
}

// QueuePendingChange appends change to the pending queue and returns its id.
func (c *RedisCache) QueuePendingChange(ctx context.Context, change PendingChange) (int64, error) {
	id, err := c.client.Incr(ctx, pendingSeqKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate pending id: %w", err)
	}

	change.ID = id
	if change.QueuedAt.IsZero() {
		change.QueuedAt = time.Now().UTC()
	}
	data, err := json.Marshal(change)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal pending change: %w", err)
	}
	if err := c.client.HSet(ctx, pendingKey, strconv.FormatInt(id, 10), data).Err(); err != nil {
		return 0, fmt.Errorf("failed to queue pending change: %w", err)
	}
	return id, nil
}

// PendingChanges lists queued changes in the order they were recorded.
func (c *RedisCache) PendingChanges(ctx context.Context) ([]PendingChange, error) {
	entries, err := c.client.HGetAll(ctx, pendingKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending changes: %w", err)
	}

	changes := make([]PendingChange, 0, len(entries))
	for field, raw := range entries {
		var change PendingChange
		if err := json.Unmarshal([]byte(raw), &change); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pending change %s: %w", field, err)
		}
		changes = append(changes, change)
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].ID < changes[j].ID })
	return changes, nil
}

func (c *RedisCache) ClearPendingChange(ctx context.Context, id int64) error {
	return c.client.HDel(ctx, pendingKey, strconv.FormatInt(id, 10)).Err()
}

func (c *RedisCache) PendingCount(ctx context.Context) (int64, error) {
	return c.client.HLen(ctx, pendingKey).Result()
}
