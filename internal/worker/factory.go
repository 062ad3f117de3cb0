package worker

import "kbportal/internal/config"

// NewQueue returns the feedback queue named by cfg.QueueType: a redis list
// shared between instances, or a buffered in-process channel.
func NewQueue(cfg *config.Config) Queue {

	if cfg.QueueType == "redis" {
		return NewRedisQueue(
			cfg.RedisAddr,
			"kbportal_feedback",
		)
	}

	return NewMemoryQueue(100)
}
