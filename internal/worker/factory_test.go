package worker

import (
	"testing"

	"kbportal/internal/config"

	"github.com/stretchr/testify/require"
)

func TestNewQueueFollowsQueueType(t *testing.T) {
	cfg := config.Default()

	mq, ok := NewQueue(cfg).(*MemoryQueue)
	require.True(t, ok)
	require.Equal(t, 100, cap(mq.ch))

	cfg.QueueType = "redis"
	cfg.RedisAddr = "localhost:6390"
	rq, ok := NewQueue(cfg).(*RedisQueue)
	require.True(t, ok)
	require.Equal(t, "kbportal_feedback", rq.key)
	require.Equal(t, "localhost:6390", rq.rdb.Options().Addr)
}
