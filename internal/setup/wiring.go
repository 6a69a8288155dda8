package setup

import (
	"context"
	"fmt"

	"github.com/povarna/aoc-solvers/internal/cache"
	"github.com/povarna/aoc-solvers/internal/config"
	red "github.com/povarna/aoc-solvers/internal/redis"
	"github.com/povarna/aoc-solvers/internal/runner"
	"github.com/povarna/aoc-solvers/internal/solvers"
	"github.com/rs/zerolog"
)

const redisConnectTries = 3

type Dependencies struct {
	Registry *solvers.Registry
	Executor *runner.Executor
	Logger   *zerolog.Logger
	Close    func() error
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	puzzleConfig, err := loadPuzzleConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle config: %w", err)
	}

	registry := solvers.NewRegistry(puzzleConfig, logger)

	closeFn := func() error { return nil }
	var answers cache.AnswerCache
	if cfg.AnswerCacheEnabled {
		client, err := red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, redisConnectTries, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect answer cache: %w", err)
		}
		answers = cache.NewRedisCache(client, cfg.AnswerCacheTTL)
		closeFn = client.Close
		logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.AnswerCacheTTL).Msg("Redis answer cache enabled")
	} else {
		answers = cache.NewMemoryCache(cfg.AnswerCacheSize)
		logger.Debug().Int("entries", cfg.AnswerCacheSize).Msg("In-memory answer cache enabled")
	}

	return &Dependencies{
		Registry: registry,
		Executor: runner.NewExecutor(registry, answers, registry.Fingerprint(), logger),
		Logger:   logger,
		Close:    closeFn,
	}, nil
}

func loadPuzzleConfig(cfg *Config) (*config.PuzzleConfig, error) {
	if cfg.PuzzlesConfigPath != "" {
		return config.LoadPuzzleConfigFrom(cfg.PuzzlesConfigPath)
	}
	return config.LoadPuzzleConfig()
}
