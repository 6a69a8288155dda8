package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/aoc-solvers/internal/models"
)

const (
	ServerName    = "aoc-solvers"
	ServerVersion = "1.0.0"
)

type Executor interface {
	Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

type Catalog interface {
	Describe() []models.PuzzleInfo
}

// SolveInput is the MCP tool input schema (matches HTTP API field names).
type SolveInput struct {
	RequestID string   `json:"request_id,omitempty" jsonschema:"optional identifier echoed in the result"`
	Day       int      `json:"day" jsonschema:"puzzle day between 1 and 7"`
	Part      int      `json:"part,omitempty" jsonschema:"1 or 2; both parts when omitted"`
	Lines     []string `json:"lines" jsonschema:"puzzle input, one element per line"`
}

type ListInput struct{}

type PuzzleList struct {
	Puzzles []models.PuzzleInfo `json:"puzzles"`
}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec Executor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
		result, err := exec.Execute(ctx, models.SolveRequest{
			RequestID: input.RequestID,
			Day:       input.Day,
			Part:      input.Part,
			Lines:     input.Lines,
		})
		if err != nil {
			return nil, models.SolveResult{}, err
		}
		return nil, result, nil
	}
}

func NewListHandler(catalog Catalog) func(context.Context, *mcp.CallToolRequest, ListInput) (*mcp.CallToolResult, PuzzleList, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, PuzzleList, error) {
		return nil, PuzzleList{Puzzles: catalog.Describe()}, nil
	}
}

// NewServer registers the solve_puzzle and list_puzzles tools.
func NewServer(exec Executor, catalog Catalog) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve an Advent of Code 2023 puzzle input (days 1-7) and return the per-record values and the final answer of each part",
	}, NewSolveHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_puzzles",
		Description: "List the supported puzzle days with their titles and how each part's values are reduced to an answer",
	}, NewListHandler(catalog))

	return server
}
