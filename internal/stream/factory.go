package stream

import (
	"context"
	"fmt"

	red "github.com/povarna/aoc-solvers/internal/redis"
	"github.com/povarna/aoc-solvers/internal/stream/redis"
	"github.com/rs/zerolog"
)

const (
	ProviderRedis = "redis"
	connectTries  = 5
)

type StreamConfig struct {
	Provider    string
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	exec redis.Executor,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// An empty provider falls back to redis.
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderRedis
	}

	switch provider {
	case ProviderRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			connectTries,
			logger,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, exec, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
