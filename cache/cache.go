// Package cache is a small JSON cache for hot, unauthenticated list reads
// (top songs, new releases, featured playlists). It is strictly best effort:
// misses and backend failures fall through to the database.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

type ListCache interface {
	// Get unmarshals the cached value into v and reports whether it was found.
	Get(ctx context.Context, key string, v interface{}) bool
	Set(ctx context.Context, key string, v interface{}, ttl time.Duration)
}

type redisCache struct {
	rdb *redis.Client
}

func NewRedis(addr, password string, db int) ListCache {
	return &redisCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *redisCache) Get(ctx context.Context, key string, v interface{}) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt")
		return false
	}
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

type noopCache struct{}

// NewNoop backs deployments without a configured redis address.
func NewNoop() ListCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, interface{}) bool { return false }

func (noopCache) Set(context.Context, string, interface{}, time.Duration) {}
