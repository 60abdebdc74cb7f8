package cache

import (
	"context"
	"time"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/config"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis operations the auth layer depends on: token
// blacklisting and login-attempt throttling.
type Cache interface {
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	IncrementLoginAttempt(ctx context.Context, identity string) (int64, error)
	IsLoginBlocked(ctx context.Context, identity string) (bool, error)
	ResetLoginAttempts(ctx context.Context, identity string) error
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) IncrementLoginAttempt(ctx context.Context, identity string) (int64, error) {
	key := constants.RedisKeyLoginAttempts + identity
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		// first failure starts the block window
		_ = c.client.Expire(ctx, key, constants.BlockDuration).Err()
	}
	return n, nil
}

func (c *redisCache) IsLoginBlocked(ctx context.Context, identity string) (bool, error) {
	n, err := c.client.Get(ctx, constants.RedisKeyLoginAttempts+identity).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= constants.MaxLoginAttempts, nil
}

func (c *redisCache) ResetLoginAttempts(ctx context.Context, identity string) error {
	return c.client.Del(ctx, constants.RedisKeyLoginAttempts+identity).Err()
}

func (c *redisCache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
