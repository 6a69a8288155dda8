package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/aoc-solvers/internal/config"
	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/povarna/aoc-solvers/internal/runner"
	"github.com/povarna/aoc-solvers/internal/solvers"
	"github.com/rs/zerolog"
)

func newTestDeps() (*runner.Executor, *solvers.Registry) {
	logger := zerolog.Nop()
	registry := solvers.NewRegistry(config.Default(), &logger)
	return runner.NewExecutor(registry, nil, registry.Fingerprint(), &logger), registry
}

func TestSolveHandler(t *testing.T) {
	exec, _ := newTestDeps()
	handler := NewSolveHandler(exec)

	_, result, err := handler(context.Background(), nil, SolveInput{
		RequestID: "mcp-1",
		Day:       1,
		Part:      1,
		Lines:     []string{"1abc2", "pqr3stu8vwx", "a1b2c3d4e5f", "treb7uchet"},
	})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.ID != "mcp-1" || len(result.Parts) != 1 || result.Parts[0].Answer != 142 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestSolveHandler_UnknownDay(t *testing.T) {
	exec, _ := newTestDeps()

	_, _, err := NewSolveHandler(exec)(context.Background(), nil, SolveInput{Day: 30})
	if !errors.Is(err, runner.ErrDayNotFound) {
		t.Errorf("expected ErrDayNotFound, got %v", err)
	}
}

func TestListHandler(t *testing.T) {
	_, registry := newTestDeps()

	_, list, err := NewListHandler(registry)(context.Background(), nil, ListInput{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if len(list.Puzzles) != 7 || list.Puzzles[0].Title != "Trebuchet?!" {
		t.Errorf("unexpected puzzles: %+v", list.Puzzles)
	}
}

func TestServer_CallTool(t *testing.T) {
	ctx := context.Background()
	exec, registry := newTestDeps()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := NewServer(exec, registry).Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "solve_puzzle",
		Arguments: map[string]any{
			"day":   4,
			"lines": []string{"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53"},
		},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool reported an error: %+v", res.Content)
	}

	data, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("failed to encode structured content: %v", err)
	}
	var result models.SolveResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to decode structured content: %v", err)
	}
	if len(result.Parts) != 2 || result.Parts[0].Answer != 8 || result.Parts[1].Answer != 1 {
		t.Errorf("unexpected result: %+v", result)
	}

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "solve_puzzle",
		Arguments: map[string]any{"day": 9, "lines": []string{}},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Error("expected an unknown day to be reported as a tool error")
	}
}
