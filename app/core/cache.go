package core

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

// redisCache backs types.Cache with a single redis instance. Keys get the
// configured prefix so several deployments can share one server.
type redisCache struct {
	cli    *redis.Client
	prefix string
}

func newRedisCache(cfg RedisConfig) types.Cache {
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &redisCache{
		cli:    cli,
		prefix: cfg.KeyPrefix,
	}
}

func (r *redisCache) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *redisCache) Get(ctx context.Context, key string) (string, error) {
	res, err := r.cli.Get(ctx, r.key(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return res, err
}

func (r *redisCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return r.cli.SetEx(ctx, r.key(key), value, expiresAt).Err()
}

func (r *redisCache) Del(ctx context.Context, key string) error {
	return r.cli.Del(ctx, r.key(key)).Err()
}
