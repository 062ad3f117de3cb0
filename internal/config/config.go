package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     string `yaml:"port"`
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`

	// SearchAPIURL is the upstream answer API. Empty means rule-based answers only.
	SearchAPIURL string        `yaml:"search_api_url"`
	AITimeout    time.Duration `yaml:"ai_timeout"`

	ContentSource string        `yaml:"content_source"` // memory | redis | dir
	ContentDir    string        `yaml:"content_dir"`
	ContentDelay  time.Duration `yaml:"content_delay"`
	RedisAddr     string        `yaml:"redis_addr"`
	QueueType     string        `yaml:"queue_type"` // memory | redis

	RateLimitRPS    int `yaml:"rate_limit_rps"`
	RateLimitBurst  int `yaml:"rate_limit_burst"`
	ChatHistorySize int `yaml:"chat_history_size"`

	AuthSecret string `yaml:"auth_secret"`
}

func Default() *Config {
	return &Config{
		Port:            "8080",
		Env:             "local",
		LogLevel:        "debug",
		AITimeout:       15 * time.Second,
		ContentSource:   "memory",
		ContentDelay:    500 * time.Millisecond,
		RedisAddr:       "localhost:6379",
		QueueType:       "memory",
		RateLimitRPS:    10,
		RateLimitBurst:  20,
		ChatHistorySize: 10,
	}
}

// Load builds the configuration from defaults and environment variables.
func Load() *Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// LoadFile reads a YAML file over the defaults, then applies environment
// variables on top.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.Env = getEnv("ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.SearchAPIURL = getEnv("SEARCH_API_URL", c.SearchAPIURL)
	c.AITimeout = getEnvDuration("AI_TIMEOUT", c.AITimeout)
	c.ContentSource = getEnv("CONTENT_SOURCE", c.ContentSource)
	c.ContentDir = getEnv("CONTENT_DIR", c.ContentDir)
	c.ContentDelay = getEnvDuration("CONTENT_DELAY", c.ContentDelay)
	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.QueueType = getEnv("QUEUE_TYPE", c.QueueType)
	c.RateLimitRPS = getEnvInt("RATE_LIMIT_RPS", c.RateLimitRPS)
	c.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", c.RateLimitBurst)
	c.ChatHistorySize = getEnvInt("CHAT_HISTORY_SIZE", c.ChatHistorySize)
	c.AuthSecret = getEnv("AUTH_SECRET", c.AuthSecret)
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return d
}
