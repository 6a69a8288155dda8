package aoc2023day01

import (
	"strings"

	"github.com/povarna/aoc-solvers/internal/puzzle"
)

const day = 1

var spelledDigits = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
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

// Part1 combines the first and last digit of every line.
func (s *Solver) Part1(lines []string) ([]int, error) {
	return calibrate(lines, false)
}

// Part2 also accepts spelled out digits. Spellings may overlap, "eightwo"
// reads as 8 then 2.
func (s *Solver) Part2(lines []string) ([]int, error) {
	return calibrate(lines, true)
}

func calibrate(lines []string, withWords bool) ([]int, error) {
	values := []int{}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		first, last, ok := firstAndLast(line, withWords)
		if !ok {
			return nil, puzzle.NewParseError(day, i+1, line, "line contains no digit")
		}
		values = append(values, first*10+last)
	}

	return values, nil
}

func firstAndLast(line string, withWords bool) (first, last int, ok bool) {
	for i := range len(line) {
		d, found := digitAt(line[i:], withWords)
		if !found {
			continue
		}
		if !ok {
			first = d
			ok = true
		}
		last = d
	}
	return first, last, ok
}

func digitAt(s string, withWords bool) (int, bool) {
	if c := s[0]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !withWords {
		return 0, false
	}
	for word, d := range spelledDigits {
		if strings.HasPrefix(s, word) {
			return d, true
		}
	}
	return 0, false
}
