// Package config loads runtime settings from MAFIA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// StoreMemory keeps game snapshots in process
	StoreMemory = "memory"

	// StoreRedis publishes game snapshots to Redis
	StoreRedis = "redis"
)

// ErrUnknownStore is returned when MAFIA_STORE is neither memory nor redis
var ErrUnknownStore = errors.New("unknown store, expected memory or redis")

type Config struct {
	Debug     bool   `envconfig:"MAFIA_DEBUG" default:"false"`
	Seed      int64  `envconfig:"MAFIA_SEED" default:"0"`
	Store     string `envconfig:"MAFIA_STORE" default:"memory"`
	CacheSize int    `envconfig:"MAFIA_CACHE_SIZE" default:"16"`
	Redis     RedisConfig
}

type RedisConfig struct {
	Addr     string        `envconfig:"MAFIA_REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"MAFIA_REDIS_PASSWORD"`
	DB       int           `envconfig:"MAFIA_REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"MAFIA_REDIS_TTL" default:"24h"`
}

// Load reads the optional env files, then the environment. Variables
// already set in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("processing the config: %w", err)
	}

	if config.Store != StoreMemory && config.Store != StoreRedis {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, config.Store)
	}

	return &config, nil
}
