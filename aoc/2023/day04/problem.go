package aoc2023day04

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/povarna/aoc-solvers/internal/utils"
)

const day = 4

var cardPattern = regexp.MustCompile(`^Card\s+(\d+)$`)

type Card struct {
	ID      int
	Winning []int
	Drawn   []int
}

// Matches counts the distinct winning numbers that were drawn.
func (c Card) Matches() int {
	drawn := make(map[int]bool, len(c.Drawn))
	for _, n := range c.Drawn {
		drawn[n] = true
	}

	matches := 0
	counted := map[int]bool{}
	for _, n := range c.Winning {
		if drawn[n] && !counted[n] {
			counted[n] = true
			matches++
		}
	}
	return matches
}

func (c Card) Points() int {
	matches := c.Matches()
	if matches == 0 {
		return 0
	}
	return 1 << (matches - 1)
}

// Propagate returns how many instances of each card end up in the pile. Card
// i wins one copy of each of the next matches[i] cards, and every copy wins
// again. Cards are processed in order so the total is computed in one
// forward pass.
func Propagate(matches []int) []int {
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}

	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}

	return copies
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int {
	return day
}

func (s *Solver) Reduction(int) puzzle.Reduction {
	return puzzle.ReduceSum
}

// Part1 returns the points of every card.
func (s *Solver) Part1(lines []string) ([]int, error) {
	cards, err := parseCards(lines)
	if err != nil {
		return nil, err
	}

	points := make([]int, 0, len(cards))
	for _, card := range cards {
		points = append(points, card.Points())
	}
	return points, nil
}

// Part2 returns the number of instances of every card, originals included.
func (s *Solver) Part2(lines []string) ([]int, error) {
	cards, err := parseCards(lines)
	if err != nil {
		return nil, err
	}

	matches := make([]int, 0, len(cards))
	for _, card := range cards {
		matches = append(matches, card.Matches())
	}
	return Propagate(matches), nil
}

func parseCards(lines []string) ([]Card, error) {
	cards := []Card{}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		card, err := parseCard(line)
		if err != nil {
			return nil, puzzle.NewParseError(day, i+1, line, err.Error())
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// parseCard reads "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func parseCard(line string) (Card, error) {
	left, drawnStr, ok := strings.Cut(line, "|")
	if !ok {
		return Card{}, fmt.Errorf("missing '|'")
	}
	header, winningStr, ok := strings.Cut(left, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':'")
	}

	m := cardPattern.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil {
		return Card{}, fmt.Errorf("expected 'Card <id>', got %q", header)
	}
	id, err := utils.ToInt(m[1])
	if err != nil {
		return Card{}, err
	}

	winning, err := utils.Fields(winningStr)
	if err != nil {
		return Card{}, err
	}
	drawn, err := utils.Fields(drawnStr)
	if err != nil {
		return Card{}, err
	}

	return Card{
		ID:      id,
		Winning: winning,
		Drawn:   drawn,
	}, nil
}
