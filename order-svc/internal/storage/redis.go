package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCheckoutGuard marks a session's checkout as in flight so a double
// submit cannot charge the same cart twice.
type RedisCheckoutGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCheckoutGuard(client *redis.Client, ttl time.Duration) *RedisCheckoutGuard {
	return &RedisCheckoutGuard{Client: client, TTL: ttl}
}

func (g *RedisCheckoutGuard) CheckoutKey(sessionID string) string {
	return "checkout:" + sessionID
}

// Acquire reports false when another checkout already holds the key.
func (g *RedisCheckoutGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.Client.SetNX(ctx, key, time.Now().Unix(), g.TTL).Result()
}

func (g *RedisCheckoutGuard) Release(ctx context.Context, key string) error {
	return g.Client.Del(ctx, key).Err()
}
