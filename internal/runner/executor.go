package runner

//go:generate mockgen -source=executor.go -destination=mocks/executor_mocks.go -package=mocks
//go:generate mockgen -destination=mocks/cache_mocks.go -package=mocks github.com/povarna/aoc-solvers/internal/cache AnswerCache
//go:generate mockgen -destination=mocks/solver_mocks.go -package=mocks github.com/povarna/aoc-solvers/internal/puzzle Solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/aoc-solvers/internal/cache"
	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/rs/zerolog"
)

var (
	ErrDayNotFound = errors.New("day not found")
	ErrInvalidPart = errors.New("part must be 0, 1 or 2")
)

// SolverFactory looks up the solver for a day
type SolverFactory interface {
	Get(day int) (puzzle.Solver, error)
}

type Executor struct {
	solvers SolverFactory
	cache   cache.AnswerCache
	rules   string
	logger  *zerolog.Logger
}

// NewExecutor wires the solve pipeline. answers may be nil to disable caching.
// rules fingerprints the puzzle settings behind solvers and is folded into
// every cache key.
func NewExecutor(solvers SolverFactory, answers cache.AnswerCache, rules string, logger *zerolog.Logger) *Executor {
	return &Executor{
		solvers: solvers,
		cache:   answers,
		rules:   rules,
		logger:  logger,
	}
}

// Execute solves the requested parts of one puzzle input. On failure the
// returned result still carries the id, the day, any parts solved so far and
// the error text.
func (e *Executor) Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	id := req.RequestID
	e.logger.Debug().Str("requestID", id).Int("day", req.Day).Int("part", req.Part).Msg("starting solve")

	result := models.SolveResult{
		ID:    id,
		Day:   req.Day,
		Parts: []models.PartResult{},
	}

	fail := func(err error) (models.SolveResult, error) {
		result.Error = err.Error()
		return result, err
	}

	if req.Part < models.PartBoth || req.Part > 2 {
		return fail(fmt.Errorf("%w: got %d", ErrInvalidPart, req.Part))
	}

	solver, err := e.solvers.Get(req.Day)
	if err != nil {
		e.logger.Error().Err(err).Int("day", req.Day).Msg("Solver not found")
		return fail(fmt.Errorf("%w: %d", ErrDayNotFound, req.Day))
	}

	for _, part := range req.Parts() {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		partResult, err := e.solvePart(ctx, solver, part, req.Lines)
		if err != nil {
			e.logger.Error().Err(err).Str("requestID", id).Int("day", req.Day).Int("part", part).Msg("solve failed")
			return fail(err)
		}
		result.Parts = append(result.Parts, partResult)
	}

	e.logger.Info().Str("requestID", id).Int("day", req.Day).Int("parts", len(result.Parts)).Msg("solve complete")
	return result, nil
}

func (e *Executor) solvePart(ctx context.Context, solver puzzle.Solver, part int, lines []string) (models.PartResult, error) {
	key := cache.Key(e.rules, solver.Day(), part, lines)

	if e.cache != nil {
		entry, hit, err := e.cache.Get(ctx, key)
		if err != nil {
			e.logger.Warn().Err(err).Str("key", key).Msg("answer cache read failed, solving")
		} else if hit {
			return models.PartResult{
				Part:      part,
				Values:    entry.Values,
				Answer:    entry.Answer,
				Reduction: solver.Reduction(part).String(),
				Cached:    true,
			}, nil
		}
	}

	start := time.Now()
	answer, err := puzzle.Run(solver, part, lines)
	if err != nil {
		return models.PartResult{}, fmt.Errorf("day %d part %d: %w", solver.Day(), part, err)
	}

	partResult := models.PartResult{
		Part:      answer.Part,
		Values:    answer.Values,
		Answer:    answer.Result,
		Reduction: answer.Reduction.String(),
		Duration:  time.Since(start),
	}

	if e.cache != nil {
		entry := cache.Entry{Values: answer.Values, Answer: answer.Result}
		if err := e.cache.Set(ctx, key, entry); err != nil {
			e.logger.Warn().Err(err).Str("key", key).Msg("answer cache write failed")
		}
	}

	return partResult, nil
}
