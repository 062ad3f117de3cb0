package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisQueue struct {
	rdb *redis.Client
	key string
}

func NewRedisQueue(addr, key string) *RedisQueue {
	return &RedisQueue{
		key: key,
		rdb: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (r *RedisQueue) Push(ctx context.Context, f Feedback) error {
	b, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}

	return r.rdb.LPush(ctx, r.key, b).Err()
}

// Pop blocks for at most five seconds; redis.Nil is returned when nothing
// arrived in that window.
func (r *RedisQueue) Pop(ctx context.Context) (Feedback, error) {
	res, err := r.rdb.BRPop(ctx, 5*time.Second, r.key).Result()
	if err != nil {
		return Feedback{}, err
	}

	var f Feedback
	if err := json.Unmarshal([]byte(res[1]), &f); err != nil {
		return Feedback{}, fmt.Errorf("decode feedback: %w", err)
	}

	return f, nil
}

func (r *RedisQueue) Close() error {
	return r.rdb.Close()
}
