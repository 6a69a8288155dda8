package solvers

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	aoc2023day01 "github.com/povarna/aoc-solvers/aoc/2023/day01"
	aoc2023day02 "github.com/povarna/aoc-solvers/aoc/2023/day02"
	aoc2023day03 "github.com/povarna/aoc-solvers/aoc/2023/day03"
	aoc2023day04 "github.com/povarna/aoc-solvers/aoc/2023/day04"
	aoc2023day05 "github.com/povarna/aoc-solvers/aoc/2023/day05"
	aoc2023day06 "github.com/povarna/aoc-solvers/aoc/2023/day06"
	aoc2023day07 "github.com/povarna/aoc-solvers/aoc/2023/day07"
	"github.com/povarna/aoc-solvers/internal/config"
	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/rs/zerolog"
)

var ErrUnknownDay = errors.New("no solver for day")

var titles = map[int]string{
	1: "Trebuchet?!",
	2: "Cube Conundrum",
	3: "Gear Ratios",
	4: "Scratchcards",
	5: "If You Give A Seed A Fertilizer",
	6: "Wait For It",
	7: "Camel Cards",
}

// Registry creates and manages the daily solvers by day number.
type Registry struct {
	solvers     map[int]puzzle.Solver
	fingerprint string
}

// NewRegistry builds every solver with the rules from cfg.
func NewRegistry(cfg *config.PuzzleConfig, logger *zerolog.Logger) *Registry {
	list := []puzzle.Solver{
		aoc2023day01.New(),
		aoc2023day02.New(cfg.CubeGame.Bag),
		aoc2023day03.New(cfg.GearRatios.MarkerRune(), logger),
		aoc2023day04.New(),
		aoc2023day05.New(logger),
		aoc2023day06.New(),
		aoc2023day07.New(cfg.CamelCards.WildcardByte(), logger),
	}

	solvers := make(map[int]puzzle.Solver, len(list))
	for _, s := range list {
		solvers[s.Day()] = s
	}

	logger.Debug().Ints("days", slices.Sorted(maps.Keys(solvers))).Msg("Solver registry initialized")

	return &Registry{
		solvers:     solvers,
		fingerprint: cfg.Fingerprint(),
	}
}

func (r *Registry) Get(day int) (puzzle.Solver, error) {
	s, exist := r.solvers[day]
	if !exist {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Fingerprint identifies the rules the solvers were built with.
func (r *Registry) Fingerprint() string {
	return r.fingerprint
}

// Days lists the registered days in ascending order.
func (r *Registry) Days() []int {
	return slices.Sorted(maps.Keys(r.solvers))
}

// Describe lists the registered days with their titles and reductions.
func (r *Registry) Describe() []models.PuzzleInfo {
	days := r.Days()
	infos := make([]models.PuzzleInfo, 0, len(days))
	for _, day := range days {
		s := r.solvers[day]
		infos = append(infos, models.PuzzleInfo{
			Day:            day,
			Title:          titles[day],
			Part1Reduction: s.Reduction(1).String(),
			Part2Reduction: s.Reduction(2).String(),
		})
	}
	return infos
}
