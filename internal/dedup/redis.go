package dedup

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis shares dedup state between portal instances.
type Redis struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedis(addr, prefix string, ttl time.Duration) *Redis {
	return &Redis{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
		ttl:    ttl,
	}
}

// Seen treats redis errors as unseen so feedback is not lost.
func (r *Redis) Seen(ctx context.Context, key string) bool {
	n, err := r.rdb.Exists(ctx, r.prefix+key).Result()
	return err == nil && n > 0
}

func (r *Redis) Mark(ctx context.Context, key string) error {
	return r.rdb.Set(ctx, r.prefix+key, 1, r.ttl).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
