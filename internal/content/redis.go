package content

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisSource reads document bodies stored as plain string keys.
type RedisSource struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisSource(addr, prefix string) *RedisSource {
	return &RedisSource{
		prefix: prefix,
		rdb: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (r *RedisSource) Fetch(ctx context.Context, id string) (Content, error) {
	v, err := r.rdb.Get(ctx, r.prefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return Content{Content: NotFoundContent}, nil
	}
	if err != nil {
		return Content{}, fmt.Errorf("redis get %s: %w", id, err)
	}
	return Content{Content: v}, nil
}

// Put stores a document body.
func (r *RedisSource) Put(ctx context.Context, id, body string) error {
	if err := r.rdb.Set(ctx, r.prefix+id, body, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", id, err)
	}
	return nil
}

// Seed writes docs through Put and returns how many were written. Existing
// keys are left alone unless overwrite is set.
func (r *RedisSource) Seed(ctx context.Context, docs map[string]string, overwrite bool) (int, error) {
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	written := 0
	for _, id := range ids {
		if !overwrite {
			n, err := r.rdb.Exists(ctx, r.prefix+id).Result()
			if err != nil {
				return written, fmt.Errorf("redis exists %s: %w", id, err)
			}
			if n > 0 {
				continue
			}
		}

		if err := r.Put(ctx, id, docs[id]); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (r *RedisSource) Close() error {
	return r.rdb.Close()
}
