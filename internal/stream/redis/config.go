package redis

import "time"

const (
	DefaultRequestStream = "puzzle-requests"
	DefaultResultStream  = "puzzle-results"
	DefaultGroup         = "solver-group"

	// DefaultClaimMinIdle is how long a delivered message may stay
	// unacknowledged before any consumer of the group takes it over.
	DefaultClaimMinIdle = time.Minute
)

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	ResultStream  string
	Group         string
	ConsumerName  string
	ClaimMinIdle  time.Duration
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, consumerName string) *RedisStreamConfig {
	if consumerName == "" {
		consumerName = "solver"
	}
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        DefaultRequestStream,
		ResultStream:  DefaultResultStream,
		Group:         DefaultGroup,
		ConsumerName:  consumerName,
		ClaimMinIdle:  DefaultClaimMinIdle,
	}
}
