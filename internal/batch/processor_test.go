package batch

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/povarna/aoc-solvers/internal/config"
	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/povarna/aoc-solvers/internal/runner"
	"github.com/povarna/aoc-solvers/internal/solvers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExecutor struct {
	calls atomic.Int32
}

func (s *stubExecutor) Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	s.calls.Add(1)
	if req.Day == 0 {
		err := errors.New("boom")
		return models.SolveResult{ID: req.RequestID, Parts: []models.PartResult{}, Error: err.Error()}, err
	}
	return models.SolveResult{
		ID:    req.RequestID,
		Day:   req.Day,
		Parts: []models.PartResult{{Part: 1, Answer: req.Day * 10}},
	}, nil
}

func collect(ch <-chan models.SolveResult) []models.SolveResult {
	var results []models.SolveResult
	for r := range ch {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b models.SolveResult) int { return strings.Compare(a.ID, b.ID) })
	return results
}

func TestProcessor_Process(t *testing.T) {
	records := []InputRecord{
		{LineNumber: 1, Request: models.SolveRequest{RequestID: "a", Day: 1}},
		{LineNumber: 2, Request: models.SolveRequest{RequestID: "b", Day: 2}},
		{LineNumber: 3, Error: errors.New("line 3: invalid solve request")},
		{LineNumber: 4, Request: models.SolveRequest{RequestID: "c", Day: 0}},
	}

	exec := &stubExecutor{}
	results := collect(NewProcessor(exec, 3, newTestLogger()).Process(context.Background(), records))

	require.Len(t, results, 4)
	assert.Equal(t, int32(3), exec.calls.Load(), "malformed records must not reach the executor")

	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, 10, results[0].Parts[0].Answer)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, 20, results[1].Parts[0].Answer)
	assert.Equal(t, "c", results[2].ID)
	assert.Equal(t, "boom", results[2].Error)
	assert.Equal(t, "line-3", results[3].ID)
	assert.Contains(t, results[3].Error, "invalid solve request")
}

func TestProcessor_Cancelled(t *testing.T) {
	records := make([]InputRecord, 50)
	for i := range records {
		records[i] = InputRecord{LineNumber: i + 1, Request: models.SolveRequest{RequestID: "x", Day: 1}}
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := NewProcessor(&stubExecutor{}, 2, newTestLogger()).Process(ctx, records)

	<-ch
	cancel()
	// drain so the workers can finish
	for range ch {
	}
}

func TestBatch_EndToEnd(t *testing.T) {
	input := `{"request_id":"cards","day":7,"lines":["32T3K 765","T55J5 684","KK677 28","KTJJT 220","QQQJA 483"]}
{"request_id":"races","day":6,"part":1,"lines":["Time:      7  15   30","Distance:  9  40  200"]}
{"request_id":"unknown","day":12,"lines":[]}`

	logger := newTestLogger()
	registry := solvers.NewRegistry(config.Default(), logger)
	executor := runner.NewExecutor(registry, nil, registry.Fingerprint(), logger)

	var records []InputRecord
	for record := range NewReader(strings.NewReader(input), logger).ReadAll(context.Background()) {
		records = append(records, record)
	}

	var out bytes.Buffer
	writer, err := NewWriter(&out, FormatText, logger)
	require.NoError(t, err)

	for result := range NewProcessor(executor, 2, logger).Process(context.Background(), records) {
		require.NoError(t, writer.Write(result))
	}
	require.NoError(t, writer.Close())

	text := out.String()
	assert.Contains(t, text, "AoC2023, Day7, Part1 solution is: 6440")
	assert.Contains(t, text, "AoC2023, Day7, Part2 solution is: 5905")
	assert.Contains(t, text, "AoC2023, Day6, Part1 solution is: 288")
	assert.NotContains(t, text, "Day6, Part2")
	assert.Contains(t, text, "unknown: error: day not found: 12")
}
