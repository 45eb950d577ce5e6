package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisBackend = "redis"

// RedisStore is the shared cache backend for multi-instance deployments.
// Entries are plain values with server-side TTL; tag membership lives in
// Redis sets keyed by TagKey. All operations are best effort: a backend
// error counts as a miss or a no-op, never a request failure.
type RedisStore struct {
	client     *redis.Client
	defaultTTL time.Duration
	logger     *zap.Logger
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client, defaultTTL time.Duration, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &RedisStore{
		client:     client,
		defaultTTL: defaultTTL,
		logger:     logger,
	}
}

// Get returns the cached payload. Expiry is enforced server-side.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			Errors.WithLabelValues(redisBackend, "get").Inc()
			s.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		Misses.WithLabelValues(redisBackend).Inc()
		return nil, false
	}
	Hits.WithLabelValues(redisBackend).Inc()
	return data, true
}

// Has reports presence without fetching the payload.
func (s *RedisStore) Has(ctx context.Context, key string) bool {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		Errors.WithLabelValues(redisBackend, "exists").Inc()
		return false
	}
	return n > 0
}

// Set stores the payload with TTL and adds the key to each tag set. Tag
// sets outlive their members; invalidation and sweeps prune dead keys.
func (s *RedisStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration, tags ...string) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, TagKey(tag), key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		Errors.WithLabelValues(redisBackend, "set").Inc()
		s.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes a single entry. Tag sets keep the stale member until the
// tag is invalidated; invalidation tolerates already-deleted keys.
func (s *RedisStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		Errors.WithLabelValues(redisBackend, "delete").Inc()
		s.logger.Warn("redis delete failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateTags removes every entry in each tag set, then drops the set.
func (s *RedisStore) InvalidateTags(ctx context.Context, tags ...string) int {
	removed := 0
	for _, tag := range tags {
		tagKey := TagKey(tag)
		keys, err := s.client.SMembers(ctx, tagKey).Result()
		if err != nil {
			Errors.WithLabelValues(redisBackend, "invalidate").Inc()
			s.logger.Warn("redis tag lookup failed", zap.String("tag", tag), zap.Error(err))
			continue
		}
		if len(keys) > 0 {
			n, err := s.client.Del(ctx, keys...).Result()
			if err != nil {
				Errors.WithLabelValues(redisBackend, "invalidate").Inc()
				s.logger.Warn("redis invalidate failed", zap.String("tag", tag), zap.Error(err))
			} else {
				removed += int(n)
			}
		}
		if err := s.client.Del(ctx, tagKey).Err(); err != nil {
			Errors.WithLabelValues(redisBackend, "invalidate").Inc()
		}
	}

	if removed > 0 {
		Invalidations.WithLabelValues(redisBackend).Add(float64(removed))
	}
	return removed
}

// Clear removes every key under the cache prefix.
func (s *RedisStore) Clear(ctx context.Context) {
	iter := s.client.Scan(ctx, 0, keyPrefix+":*", 256).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 256 {
			s.client.Del(ctx, keys...)
			keys = keys[:0]
		}
	}
	if len(keys) > 0 {
		s.client.Del(ctx, keys...)
	}
	if err := iter.Err(); err != nil {
		Errors.WithLabelValues(redisBackend, "clear").Inc()
		s.logger.Warn("redis clear failed", zap.Error(err))
	}
}

// Len returns the number of keys under the cache prefix, tag sets included.
func (s *RedisStore) Len() int {
	ctx := context.Background()
	count := 0
	iter := s.client.Scan(ctx, 0, keyPrefix+":*", 256).Iterator()
	for iter.Next(ctx) {
		count++
	}
	return count
}

// Close releases the client connection.
func (s *RedisStore) Close() {
	if err := s.client.Close(); err != nil {
		s.logger.Warn("redis close failed", zap.Error(err))
	}
}
