package aoc2023day07

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/rs/zerolog"
)

var example = []string{
	"32T3K 765",
	"T55J5 684",
	"KK677 28",
	"KTJJT 220",
	"QQQJA 483",
}

func newSolver() *Solver {
	logger := zerolog.Nop()
	return New(DefaultWildcard, &logger)
}

func TestPart1(t *testing.T) {
	s := newSolver()
	got, err := s.Part1(example)
	if err != nil {
		t.Fatalf("Part1() failed: %v", err)
	}

	if diff := cmp.Diff([]int{765, 440, 84, 2736, 2415}, got); diff != "" {
		t.Errorf("Part1() mismatch (-want +got):\n%s", diff)
	}
	if answer := s.Reduction(1).Apply(got); answer != 6440 {
		t.Errorf("expected 6440, got %d", answer)
	}
}

func TestPart2(t *testing.T) {
	s := newSolver()
	got, err := s.Part2(example)
	if err != nil {
		t.Fatalf("Part2() failed: %v", err)
	}

	if diff := cmp.Diff([]int{765, 56, 2052, 1932, 1100}, got); diff != "" {
		t.Errorf("Part2() mismatch (-want +got):\n%s", diff)
	}
	if answer := s.Reduction(2).Apply(got); answer != 5905 {
		t.Errorf("expected 5905, got %d", answer)
	}
}

func TestClassify(t *testing.T) {
	plain := Rules{}
	wild := Rules{Wildcard: 'J'}

	tests := []struct {
		cards string
		rules Rules
		want  Category
	}{
		{"AAAAA", plain, FiveOfAKind},
		{"AA8AA", plain, FourOfAKind},
		{"23332", plain, FullHouse},
		{"TTT98", plain, ThreeOfAKind},
		{"23432", plain, TwoPair},
		{"A23A4", plain, OnePair},
		{"23456", plain, HighCard},
		{"222JJ", plain, FullHouse},
		{"222JJ", wild, FiveOfAKind},
		{"222JK", wild, FourOfAKind},
		{"22J45", wild, ThreeOfAKind},
		{"2233J", wild, FullHouse},
		{"2345J", wild, OnePair},
		{"JJJJJ", wild, FiveOfAKind},
		{"KTJJT", wild, FourOfAKind},
	}

	for _, tt := range tests {
		if got := tt.rules.Classify(tt.cards); got != tt.want {
			t.Errorf("Classify(%q, wildcard=%q) = %s, expected %s", tt.cards, tt.rules.Wildcard, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	plain := Rules{}
	wild := Rules{Wildcard: 'J'}

	tests := []struct {
		name  string
		rules Rules
		a, b  string
		want  int
	}{
		{"category wins", plain, "7K53J", "T4729", -1},
		{"high card tie break", plain, "33332", "2AAAA", 1},
		{"second card tie break", plain, "KK677", "KTJJT", 1},
		{"wildcard ranks lowest", wild, "JKKK2", "QQQQ2", -1},
		{"equal hands", plain, "23456", "23456", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rules.Compare(Hand{Cards: tt.a}, Hand{Cards: tt.b})
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCustomWildcard(t *testing.T) {
	logger := zerolog.Nop()
	s := New('2', &logger)

	got, err := s.Part2([]string{"2KKKA 1", "QQQQA 2"})
	if err != nil {
		t.Fatalf("Part2() failed: %v", err)
	}

	// both are four of a kind; the wildcard 2 loses the tie break
	if diff := cmp.Diff([]int{1, 4}, got); diff != "" {
		t.Errorf("Part2() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, part := range []int{1, 2} {
		got, err := puzzle.Solve(newSolver(), part, []string{"", " "})
		if err != nil {
			t.Fatalf("part %d failed: %v", part, err)
		}
		if diff := cmp.Diff([]int{}, got); diff != "" {
			t.Errorf("part %d mismatch (-want +got):\n%s", part, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{"missing bet", []string{"32T3K"}},
		{"short hand", []string{"32T3 765"}},
		{"unknown card", []string{"32X3K 765"}},
		{"bad bet", []string{"32T3K abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newSolver().Part1(tt.input); !puzzle.IsParseError(err) {
				t.Fatalf("expected parse error, got %v", err)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	if got := FullHouse.String(); got != "full house" {
		t.Errorf("expected 'full house', got %q", got)
	}
	if got := Category(42).String(); got != "unknown" {
		t.Errorf("expected 'unknown', got %q", got)
	}
}
