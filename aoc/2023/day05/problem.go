package aoc2023day05

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/povarna/aoc-solvers/internal/utils"
	"github.com/rs/zerolog"
)

const (
	day       = 5
	seedStage = "seed"
)

var mapPattern = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)

type Almanac struct {
	Seeds  []int
	stages map[string]RangeMap
}

// Stage returns the map whose source category is name.
func (a *Almanac) Stage(name string) (RangeMap, bool) {
	m, ok := a.stages[name]
	return m, ok
}

// Step is one hop of a resolution chain: the value reached in Category.
type Step struct {
	Category string
	Value    int
}

// Resolve follows the category graph from start, applying each stage's map,
// until it reaches a category that has no map of its own.
func (a *Almanac) Resolve(start string, value int) (int, []Step, error) {
	steps := []Step{{Category: start, Value: value}}
	visited := map[string]bool{}

	category := start
	for {
		stage, ok := a.Stage(category)
		if !ok {
			return value, steps, nil
		}
		if visited[category] {
			return 0, nil, puzzle.Invariantf(day, "stage graph loops back to %q", category)
		}
		visited[category] = true

		value = stage.Map(value)
		category = stage.To
		steps = append(steps, Step{Category: category, Value: value})
	}
}

// ResolveIntervals is Resolve for whole intervals of values.
func (a *Almanac) ResolveIntervals(start string, intervals []Interval) ([]Interval, error) {
	visited := map[string]bool{}

	category := start
	for {
		stage, ok := a.Stage(category)
		if !ok {
			return intervals, nil
		}
		if visited[category] {
			return nil, puzzle.Invariantf(day, "stage graph loops back to %q", category)
		}
		visited[category] = true

		var next []Interval
		for _, iv := range intervals {
			next = append(next, stage.MapInterval(iv)...)
		}
		intervals = next
		category = stage.To
	}
}

// ParseAlmanac reads the seeds line followed by blank-line separated
// "<from>-to-<to> map:" blocks of "dest source length" rules.
func ParseAlmanac(lines []string) (*Almanac, error) {
	almanac := &Almanac{
		Seeds:  []int{},
		stages: map[string]RangeMap{},
	}

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return almanac, nil
	}

	label, seedsStr, ok := strings.Cut(lines[i], ":")
	if !ok || strings.TrimSpace(label) != "seeds" {
		return nil, puzzle.NewParseError(day, i+1, lines[i], "expected 'seeds: ...'")
	}
	seeds, err := utils.Fields(seedsStr)
	if err != nil {
		return nil, puzzle.NewParseError(day, i+1, lines[i], err.Error())
	}
	almanac.Seeds = seeds

	var current *RangeMap
	flush := func() {
		if current != nil {
			almanac.stages[current.From] = *current
		}
	}

	for n := i + 1; n < len(lines); n++ {
		line := strings.TrimSpace(lines[n])
		if line == "" {
			continue
		}

		if m := mapPattern.FindStringSubmatch(line); m != nil {
			flush()
			if _, exists := almanac.stages[m[1]]; exists {
				return nil, puzzle.NewParseError(day, n+1, lines[n], fmt.Sprintf("duplicate map for %q", m[1]))
			}
			current = &RangeMap{From: m[1], To: m[2], Rules: []Rule{}}
			continue
		}

		if current == nil {
			return nil, puzzle.NewParseError(day, n+1, lines[n], "rule outside of a map block")
		}
		rule, err := parseRule(line)
		if err != nil {
			return nil, puzzle.NewParseError(day, n+1, lines[n], err.Error())
		}
		current.Rules = append(current.Rules, rule)
	}
	flush()

	return almanac, nil
}

func parseRule(line string) (Rule, error) {
	nums, err := utils.Fields(line)
	if err != nil {
		return Rule{}, err
	}
	if len(nums) != 3 {
		return Rule{}, fmt.Errorf("expected 'dest source length', got %d numbers", len(nums))
	}
	if nums[2] < 0 {
		return Rule{}, fmt.Errorf("negative range length %d", nums[2])
	}
	return Rule{Dest: nums[0], Source: nums[1], Length: nums[2]}, nil
}

type Solver struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Solver {
	return &Solver{
		logger: logger,
	}
}

func (s *Solver) Day() int {
	return day
}

func (s *Solver) Reduction(int) puzzle.Reduction {
	return puzzle.ReduceMin
}

// Part1 returns the final location of every seed.
func (s *Solver) Part1(lines []string) ([]int, error) {
	almanac, err := ParseAlmanac(lines)
	if err != nil {
		return nil, err
	}

	locations := make([]int, 0, len(almanac.Seeds))
	for _, seed := range almanac.Seeds {
		location, steps, err := almanac.Resolve(seedStage, seed)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)

		if e := s.logger.Debug(); e.Enabled() {
			hops := make([]string, len(steps))
			for i, step := range steps {
				hops[i] = fmt.Sprintf("%s %d", step.Category, step.Value)
			}
			e.Int("seed", seed).Msg(strings.Join(hops, " -> "))
		}
	}
	return locations, nil
}

// Part2 reads the seeds as (start, length) pairs and returns the lowest
// location reachable from each pair.
func (s *Solver) Part2(lines []string) ([]int, error) {
	almanac, err := ParseAlmanac(lines)
	if err != nil {
		return nil, err
	}
	if len(almanac.Seeds)%2 != 0 {
		return nil, puzzle.NewParseError(day, 0, "", fmt.Sprintf("seed ranges need pairs, got %d numbers", len(almanac.Seeds)))
	}

	lowest := make([]int, 0, len(almanac.Seeds)/2)
	for i := 0; i < len(almanac.Seeds); i += 2 {
		start, length := almanac.Seeds[i], almanac.Seeds[i+1]
		if length <= 0 {
			continue
		}

		locations, err := almanac.ResolveIntervals(seedStage, []Interval{{Start: start, End: start + length}})
		if err != nil {
			return nil, err
		}

		best := locations[0].Start
		for _, iv := range locations[1:] {
			best = min(best, iv.Start)
		}
		s.logger.Debug().
			Int("start", start).
			Int("length", length).
			Int("intervals", len(locations)).
			Int("lowest", best).
			Msg("seed range resolved")
		lowest = append(lowest, best)
	}
	return lowest, nil
}
