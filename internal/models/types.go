package models

import (
	"fmt"
	"time"
)

// PartBoth asks for both parts of a day.
const PartBoth = 0

// Input message

type SolveRequest struct {
	RequestID string   `json:"request_id"`
	Day       int      `json:"day"`
	Part      int      `json:"part,omitempty"`
	Lines     []string `json:"lines"`
}

// Parts expands the requested part into the list of parts to run.
func (r SolveRequest) Parts() []int {
	if r.Part == PartBoth {
		return []int{1, 2}
	}
	return []int{r.Part}
}

// One part's output
type PartResult struct {
	Part      int           `json:"part"`
	Values    []int         `json:"values"`
	Answer    int           `json:"answer"`
	Reduction string        `json:"reduction"`
	Cached    bool          `json:"cached"`
	Duration  time.Duration `json:"duration_ns"`
}

type SolveResult struct {
	ID    string       `json:"id"`
	Day   int          `json:"day"`
	Parts []PartResult `json:"parts"`
	Error string       `json:"error,omitempty"`
}

// Line is the text output of a solved part.
func (p PartResult) Line(day int) string {
	return fmt.Sprintf("AoC2023, Day%d, Part%d solution is: %d", day, p.Part, p.Answer)
}

// PuzzleInfo describes one registered day.
type PuzzleInfo struct {
	Day            int    `json:"day"`
	Title          string `json:"title"`
	Part1Reduction string `json:"part1_reduction"`
	Part2Reduction string `json:"part2_reduction"`
}
