package setup

import (
	"os"
	"strconv"
	"time"

	"github.com/povarna/aoc-solvers/internal/cache"
)

type Config struct {
	LogLevel           string
	PuzzlesConfigPath  string
	RedisAddr          string
	RedisPassword      string
	AnswerCacheEnabled bool
	AnswerCacheTTL     time.Duration
	AnswerCacheSize    int
	APIPort            string
	BatchWorkers       int
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		PuzzlesConfigPath:  getEnv("PUZZLES_CONFIG_PATH", ""),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		AnswerCacheEnabled: getEnvBool("ANSWER_CACHE_ENABLED", false),
		AnswerCacheTTL:     getEnvDuration("ANSWER_CACHE_TTL", 24*time.Hour),
		AnswerCacheSize:    getEnvInt("ANSWER_CACHE_SIZE", cache.DefaultMemoryEntries),
		APIPort:            getEnv("AOC_API_PORT", "8080"),
		BatchWorkers:       getEnvInt("BATCH_WORKERS", 5),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 1 {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
