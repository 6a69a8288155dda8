package batch

import (
	"context"
	"fmt"

	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Executor interface {
	Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

// Processor solves records with a bounded number of concurrent workers.
type Processor struct {
	executor Executor
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(executor Executor, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		executor: executor,
		workers:  workers,
		logger:   logger,
	}
}

// Process emits one result per record, in completion order. The channel is
// closed once every record is done or ctx is cancelled.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.SolveResult {
	results := make(chan models.SolveResult)

	go func() {
		defer close(results)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for _, record := range records {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				result := p.processRecord(gctx, record)
				select {
				case results <- result:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}

		if err := g.Wait(); err != nil {
			p.logger.Warn().Err(err).Msg("Batch processing interrupted")
		}
	}()

	return results
}

func (p *Processor) processRecord(ctx context.Context, record InputRecord) models.SolveResult {
	if record.Error != nil {
		return models.SolveResult{
			ID:    fmt.Sprintf("line-%d", record.LineNumber),
			Parts: []models.PartResult{},
			Error: record.Error.Error(),
		}
	}

	result, err := p.executor.Execute(ctx, record.Request)
	if err != nil {
		p.logger.Error().
			Err(err).
			Int("line", record.LineNumber).
			Str("id", record.Request.RequestID).
			Msg("Solve failed")
	}
	return result
}
