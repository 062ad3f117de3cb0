package content

import (
	"fmt"

	"kbportal/internal/config"
	"kbportal/internal/observability"
)

// RedisPrefix namespaces document keys in redis.
const RedisPrefix = "kbportal:content:"

// NewSource picks the content backend named by cfg.ContentSource.
func NewSource(cfg *config.Config, logger *observability.Logger) (Source, error) {

	switch cfg.ContentSource {
	case "", "memory":
		return NewMemorySource(SeedContent(), cfg.ContentDelay), nil
	case "redis":
		return NewRedisSource(cfg.RedisAddr, RedisPrefix), nil
	case "dir":
		return NewDirSource(cfg.ContentDir, logger)
	}

	return nil, fmt.Errorf("unknown content source %q", cfg.ContentSource)
}
