package aoc2023day04

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/povarna/aoc-solvers/internal/puzzle"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestPart1(t *testing.T) {
	got, err := New().Part1(strings.Split(example, "\n"))
	if err != nil {
		t.Fatalf("Part1() failed: %v", err)
	}
	if diff := cmp.Diff([]int{8, 2, 2, 1, 0, 0}, got); diff != "" {
		t.Errorf("Part1() mismatch (-want +got):\n%s", diff)
	}
	if sum := puzzle.ReduceSum.Apply(got); sum != 13 {
		t.Errorf("sum = %d; want 13", sum)
	}
}

func TestPart2(t *testing.T) {
	got, err := New().Part2(strings.Split(example, "\n"))
	if err != nil {
		t.Fatalf("Part2() failed: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 4, 8, 14, 1}, got); diff != "" {
		t.Errorf("Part2() mismatch (-want +got):\n%s", diff)
	}
	if total := puzzle.ReduceSum.Apply(got); total != 30 {
		t.Errorf("total = %d; want 30", total)
	}
}

func TestPropagate(t *testing.T) {
	tests := []struct {
		name     string
		matches  []int
		expected []int
	}{
		{"empty", []int{}, []int{}},
		{"no matches", []int{0, 0, 0}, []int{1, 1, 1}},
		{"chain", []int{1, 1, 1}, []int{1, 2, 3}},
		{"clamped at the end", []int{5, 0}, []int{1, 2}},
		{"fan out", []int{2, 1, 0}, []int{1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Propagate(tt.matches)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Propagate(%v) mismatch (-want +got):\n%s", tt.matches, diff)
			}

			total := puzzle.ReduceSum.Apply(got)
			if total < len(tt.matches) {
				t.Errorf("total %d is below the number of cards %d", total, len(tt.matches))
			}
		})
	}
}

func TestPropagate_LargeTableIsLinear(t *testing.T) {
	matches := make([]int, 200)
	for i := range matches {
		matches[i] = 1
	}

	got := Propagate(matches)
	if got[len(got)-1] != 200 {
		t.Errorf("last card instances = %d; want 200", got[len(got)-1])
	}
}

func TestCard_MatchesCountsDistinctNumbers(t *testing.T) {
	card := Card{ID: 1, Winning: []int{5, 5, 7}, Drawn: []int{5, 7, 7}}
	if got := card.Matches(); got != 2 {
		t.Errorf("Matches() = %d; want 2", got)
	}
	if got := card.Points(); got != 2 {
		t.Errorf("Points() = %d; want 2", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing bar", "Card 1: 41 48 83"},
		{"missing colon", "Card 1 41 48 | 83"},
		{"bad header", "Ticket 1: 41 | 83"},
		{"bad number", "Card 1: 41 x | 83"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Part1([]string{tt.line})
			if !puzzle.IsParseError(err) {
				t.Errorf("expected parse error, got %v", err)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	for part := 1; part <= 2; part++ {
		got, err := puzzle.Solve(New(), part, nil)
		if err != nil {
			t.Fatalf("part %d failed: %v", part, err)
		}
		if diff := cmp.Diff([]int{}, got); diff != "" {
			t.Errorf("part %d on empty input (-want +got):\n%s", part, diff)
		}
	}
}
