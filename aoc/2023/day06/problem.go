package aoc2023day06

import (
	"fmt"
	"sort"
	"strings"

	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/povarna/aoc-solvers/internal/utils"
)

const day = 6

type Race struct {
	Time     int
	Distance int
}

// Beats reports whether holding the button for charge milliseconds travels
// further than the record distance. The comparison divides instead of
// multiplying so joined part 2 races cannot overflow.
func (r Race) Beats(charge int) bool {
	travel := r.Time - charge
	if charge <= 0 || travel <= 0 {
		return r.Distance < 0
	}
	return travel > r.Distance/charge
}

// WaysToWin counts the charge times that beat the record. Travelled distance
// is symmetric around Time/2, so only the shortest winning charge is needed.
func (r Race) WaysToWin() int {
	half := r.Time / 2
	if r.Time < 0 || !r.Beats(half) {
		return 0
	}

	shortest := sort.Search(half+1, r.Beats)
	return r.Time - 2*shortest + 1
}

func parseRow(lines []string, idx int, label string) (string, error) {
	name, values, ok := strings.Cut(lines[idx], ":")
	if !ok || strings.TrimSpace(name) != label {
		return "", puzzle.NewParseError(day, idx+1, lines[idx], fmt.Sprintf("expected '%s: ...'", label))
	}
	return values, nil
}

// parseRows returns the raw Time and Distance values. ok is false when the
// input holds no records at all.
func parseRows(lines []string) (times, distances string, ok bool, err error) {
	var rows []int
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, i)
		}
	}

	if len(rows) == 0 {
		return "", "", false, nil
	}
	if len(rows) != 2 {
		return "", "", false, puzzle.NewParseError(day, 0, "", fmt.Sprintf("expected Time and Distance lines, got %d lines", len(rows)))
	}

	times, err = parseRow(lines, rows[0], "Time")
	if err != nil {
		return "", "", false, err
	}
	distances, err = parseRow(lines, rows[1], "Distance")
	if err != nil {
		return "", "", false, err
	}
	return times, distances, true, nil
}

func parseRaces(lines []string) ([]Race, error) {
	timesStr, distancesStr, ok, err := parseRows(lines)
	if err != nil || !ok {
		return []Race{}, err
	}

	times, err := utils.Fields(timesStr)
	if err != nil {
		return nil, puzzle.NewParseError(day, 0, "", err.Error())
	}
	distances, err := utils.Fields(distancesStr)
	if err != nil {
		return nil, puzzle.NewParseError(day, 0, "", err.Error())
	}
	if len(times) != len(distances) {
		return nil, puzzle.NewParseError(day, 0, "", fmt.Sprintf("%d times but %d distances", len(times), len(distances)))
	}

	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: distances[i]}
	}
	return races, nil
}

// parseSingleRace ignores the spacing between numbers and reads each row as
// one long number.
func parseSingleRace(lines []string) ([]Race, error) {
	timesStr, distancesStr, ok, err := parseRows(lines)
	if err != nil || !ok {
		return []Race{}, err
	}

	joined := func(s string) (int, error) {
		n, err := utils.ToInt(strings.Join(strings.Fields(s), ""))
		if err != nil {
			return 0, puzzle.NewParseError(day, 0, "", err.Error())
		}
		return n, nil
	}

	t, err := joined(timesStr)
	if err != nil {
		return nil, err
	}
	d, err := joined(distancesStr)
	if err != nil {
		return nil, err
	}
	return []Race{{Time: t, Distance: d}}, nil
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int {
	return day
}

func (s *Solver) Reduction(part int) puzzle.Reduction {
	if part == 1 {
		return puzzle.ReduceProduct
	}
	return puzzle.ReduceSum
}

func (s *Solver) Part1(lines []string) ([]int, error) {
	races, err := parseRaces(lines)
	if err != nil {
		return nil, err
	}
	return waysToWin(races), nil
}

func (s *Solver) Part2(lines []string) ([]int, error) {
	races, err := parseSingleRace(lines)
	if err != nil {
		return nil, err
	}
	return waysToWin(races), nil
}

func waysToWin(races []Race) []int {
	ways := make([]int, len(races))
	for i, race := range races {
		ways[i] = race.WaysToWin()
	}
	return ways
}
