// Package cache holds the redis-backed session liveness cache consulted
// by the request guard. An entry says whether the user currently holds a
// refresh token; a miss falls through to the user store.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=../../mocks/mock_session_cache.go -package=mocks github.com/AniTigerSib/BookTrackerBackend/internal/auth/cache SessionCache

type SessionCache interface {
	// Get returns (active, found). found=false means the caller must
	// consult the store and repopulate.
	Get(ctx context.Context, userID int64) (bool, bool, error)
	// Set records the liveness flag with a TTL, normally the access-token
	// TTL so stale entries cannot outlive the tokens they vouch for.
	Set(ctx context.Context, userID int64, active bool, ttl time.Duration) error
	// Delete drops the entry.
	Delete(ctx context.Context, userID int64) error
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache builds a client from a URL (redis://:pass@host:6379/0)
// and pings it so a bad address fails at startup, not on first request.
func NewRedisCache(ctx context.Context, redisURL, prefix string) (SessionCache, error) {
	if prefix == "" {
		prefix = "auth:session:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(userID int64) string {
	return c.prefix + strconv.FormatInt(userID, 10)
}

func (c *redisCache) Get(ctx context.Context, userID int64) (bool, bool, error) {
	val, err := c.rdb.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	return val == "1", true, nil
}

func (c *redisCache) Set(ctx context.Context, userID int64, active bool, ttl time.Duration) error {
	val := "0"
	if active {
		val = "1"
	}

	return c.rdb.Set(ctx, c.key(userID), val, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, c.key(userID)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
