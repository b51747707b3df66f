// Package cache is a thin key/value layer over Redis, used for payment
// idempotency: a charge retried with the same idempotency key must return
// the original intent instead of charging twice.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the port the payment layer depends on. A miss is reported as an
// empty string, not an error.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Key(operation, id string) string
}

type redisCache struct {
	client    *redis.Client
	namespace string
}

// NewRedis connects a cache to the Redis instance at addr. Keys are
// namespaced so several services can share one instance.
func NewRedis(addr, namespace string) Cache {
	return &redisCache{
		client:    redis.NewClient(&redis.Options{Addr: addr}),
		namespace: namespace,
	}
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCache) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *redisCache) Key(operation, id string) string {
	return fmt.Sprintf("%s:%s:%s", r.namespace, operation, id)
}
