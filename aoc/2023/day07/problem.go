package aoc2023day07

import (
	"fmt"
	"strings"

	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/povarna/aoc-solvers/internal/utils"
	"github.com/rs/zerolog"
)

const (
	day             = 7
	DefaultWildcard = 'J'
)

func parseHands(lines []string) ([]Hand, error) {
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, puzzle.NewParseError(day, i+1, line, "expected '<cards> <bet>'")
		}

		cards := fields[0]
		if len(cards) != handSize {
			return nil, puzzle.NewParseError(day, i+1, line, fmt.Sprintf("hand needs %d cards", handSize))
		}
		for j := 0; j < len(cards); j++ {
			if strings.IndexByte(cardOrder, cards[j]) < 0 {
				return nil, puzzle.NewParseError(day, i+1, line, fmt.Sprintf("unknown card %q", cards[j]))
			}
		}

		bet, err := utils.ToInt(fields[1])
		if err != nil {
			return nil, puzzle.NewParseError(day, i+1, line, err.Error())
		}
		hands = append(hands, Hand{Cards: cards, Bet: bet})
	}
	return hands, nil
}

type Solver struct {
	wildcard byte
	logger   *zerolog.Logger
}

func New(wildcard byte, logger *zerolog.Logger) *Solver {
	return &Solver{
		wildcard: wildcard,
		logger:   logger,
	}
}

func (s *Solver) Day() int {
	return day
}

func (s *Solver) Reduction(int) puzzle.Reduction {
	return puzzle.ReduceSum
}

func (s *Solver) Part1(lines []string) ([]int, error) {
	return s.solve(lines, Rules{})
}

func (s *Solver) Part2(lines []string) ([]int, error) {
	return s.solve(lines, Rules{Wildcard: s.wildcard})
}

func (s *Solver) solve(lines []string, rules Rules) ([]int, error) {
	hands, err := parseHands(lines)
	if err != nil {
		return nil, err
	}

	for _, h := range hands {
		s.logger.Debug().
			Str("cards", h.Cards).
			Stringer("category", rules.Classify(h.Cards)).
			Int("bet", h.Bet).
			Msg("hand classified")
	}

	return rules.Winnings(hands), nil
}
