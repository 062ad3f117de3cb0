package worker_test

import (
	"context"
	"testing"
	"time"

	"kbportal/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisSuite struct {
	suite.Suite
	q *worker.RedisQueue
}

func (s *RedisSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		s.T().Skipf("redis not available: %v", err)
	}

	s.q = worker.NewRedisQueue("localhost:6379", "kbportal_feedback_test")
}

func (s *RedisSuite) TearDownSuite() {
	if s.q != nil {
		_ = s.q.Close()
	}
}

func (s *RedisSuite) TestPushPop() {

	ctx := context.Background()

	fb := worker.Feedback{Query: "วันหยุด", Answer: "13-16 เมษายน", Type: "positive"}

	err := s.q.Push(ctx, fb)
	s.NoError(err)

	out, err := s.q.Pop(ctx)

	s.NoError(err)
	s.Equal(fb.Query, out.Query)
	s.Equal(fb.Type, out.Type)
}

func TestRedis(t *testing.T) {
	suite.Run(t, new(RedisSuite))
}
