package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	payloadField = "payload"
	claimBatch   = 10
)

type Executor interface {
	Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

// Consumer reads solve requests from a stream consumer group and appends
// each result to the result stream.
type Consumer struct {
	client       redis.Cmdable
	stream       string
	resultStream string
	groupID      string
	consumerName string
	claimMinIdle time.Duration
	claimStart   string
	executor     Executor
	logger       *zerolog.Logger
	closer       func() error
}

func NewConsumer(client *redis.Client, cfg *RedisStreamConfig, exec Executor, logger *zerolog.Logger) *Consumer {
	c := newConsumer(client, cfg, exec, logger)
	c.closer = client.Close
	return c
}

func newConsumer(client redis.Cmdable, cfg *RedisStreamConfig, exec Executor, logger *zerolog.Logger) *Consumer {
	claimMinIdle := cfg.ClaimMinIdle
	if claimMinIdle <= 0 {
		claimMinIdle = DefaultClaimMinIdle
	}
	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		resultStream: cfg.ResultStream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		claimMinIdle: claimMinIdle,
		claimStart:   "0-0",
		executor:     exec,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group %s: %w", c.groupID, err)
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("results", c.resultStream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	var lastClaim time.Time
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if time.Since(lastClaim) >= c.claimMinIdle {
			c.reclaim(ctx)
			lastClaim = time.Now()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, s := range msgs {
			for _, msg := range s.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

// reclaim takes over messages that were delivered to a consumer of the group
// but stayed unacknowledged for claimMinIdle, this consumer's own included,
// and processes them again. Each pass handles one batch and resumes from
// where the previous pass stopped.
func (c *Consumer) reclaim(ctx context.Context) {
	msgs, next, err := c.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   c.stream,
		Group:    c.groupID,
		Consumer: c.consumerName,
		MinIdle:  c.claimMinIdle,
		Start:    c.claimStart,
		Count:    claimBatch,
	}).Result()
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Error().Err(err).Msg("Failed to claim pending messages")
		}
		return
	}

	c.claimStart = next
	if next == "" {
		c.claimStart = "0-0"
	}

	for _, msg := range msgs {
		c.logger.Warn().Str("id", msg.ID).Msg("Reprocessing unacknowledged message")
		c.process(ctx, msg)
	}
}

func (c *Consumer) Stop() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Debug().Str("id", msg.ID).Msg("Message received")

	req, err := decode(msg)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Skipping malformed message")
		c.ack(ctx, msg.ID)
		return
	}
	if req.RequestID == "" {
		req.RequestID = msg.ID
	}

	// failures are reported through result.Error
	result, _ := c.executor.Execute(ctx, req)

	if err := c.publish(ctx, result); err != nil {
		// stays pending until a reclaim pass picks it up again
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish result")
		return
	}

	c.logger.Info().
		Str("id", msg.ID).
		Str("request_id", result.ID).
		Int("day", result.Day).
		Str("error", result.Error).
		Msg("Solve complete")

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, result models.SolveResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: map[string]any{
			"request_id": result.ID,
			payloadField: string(payload),
		},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}

func decode(msg redis.XMessage) (models.SolveRequest, error) {
	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		return models.SolveRequest{}, errors.New("missing payload field")
	}

	var req models.SolveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return models.SolveRequest{}, fmt.Errorf("failed to decode payload: %w", err)
	}
	return req, nil
}

// Publish appends one solve request to the request stream and returns the
// entry id.
func Publish(ctx context.Context, client redis.Cmdable, stream string, req models.SolveRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	return client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{payloadField: string(payload)},
	}).Result()
}
