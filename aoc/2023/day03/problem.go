package aoc2023day03

import (
	"regexp"
	"slices"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/povarna/aoc-solvers/internal/grid"
	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/rs/zerolog"
)

const day = 3

var partPattern = regexp.MustCompile(`\d+`)

// Part is a numeric run in the schematic. Start and End are inclusive.
type Part struct {
	Number int
	Start  grid.Point
	End    grid.Point
}

func (p Part) Contains(pt grid.Point) bool {
	return p.Start.X <= pt.X && pt.X <= p.End.X &&
		p.Start.Y <= pt.Y && pt.Y <= p.End.Y
}

// Bounds returns the part's box grown by one cell in every direction.
func (p Part) Bounds() (grid.Point, grid.Point) {
	return grid.Point{X: p.Start.X - 1, Y: p.Start.Y - 1}, grid.Point{X: p.End.X + 1, Y: p.End.Y + 1}
}

// Surrounding lists every point of Bounds, the part's own cells included.
func (p Part) Surrounding() []grid.Point {
	from, to := p.Bounds()
	points := make([]grid.Point, 0, (to.X-from.X+1)*(to.Y-from.Y+1))
	for y := from.Y; y <= to.Y; y++ {
		for x := from.X; x <= to.X; x++ {
			points = append(points, grid.Point{X: x, Y: y})
		}
	}
	return points
}

type Schematic struct {
	grid  grid.Grid
	parts []Part
}

func NewSchematic(lines []string) (*Schematic, error) {
	s := &Schematic{
		grid:  grid.New(lines),
		parts: []Part{},
	}

	for y, line := range lines {
		for _, loc := range partPattern.FindAllStringIndex(line, -1) {
			text := line[loc[0]:loc[1]]
			number, err := strconv.Atoi(text)
			if err != nil {
				return nil, puzzle.NewParseError(day, y+1, line, "part number "+text+" out of range")
			}
			startX := utf8.RuneCountInString(line[:loc[0]])
			endX := startX + utf8.RuneCountInString(text) - 1
			s.parts = append(s.parts, Part{
				Number: number,
				Start:  grid.Point{X: startX, Y: y},
				End:    grid.Point{X: endX, Y: y},
			})
		}
	}

	return s, nil
}

func (s *Schematic) Parts() []Part {
	return s.parts
}

// PartAt finds the part covering pt. The scan is linear in the number of
// parts.
func (s *Schematic) PartAt(pt grid.Point) (int, bool) {
	for i, part := range s.parts {
		if part.Contains(pt) {
			return i, true
		}
	}
	return -1, false
}

func isSymbol(r rune) bool {
	return r != grid.Blank && !unicode.IsDigit(r)
}

// PartNumbers returns, in reading order, every part adjacent to a symbol.
func (s *Schematic) PartNumbers(logger *zerolog.Logger) ([]int, error) {
	numbers := []int{}

	for _, part := range s.parts {
		if part.Start.Y != part.End.Y {
			return nil, puzzle.Invariantf(day, "part %d spans rows %d..%d", part.Number, part.Start.Y, part.End.Y)
		}

		for _, pt := range part.Surrounding() {
			if !isSymbol(s.grid.Get(pt)) {
				continue
			}
			numbers = append(numbers, part.Number)
			from, to := part.Bounds()
			logger.Debug().
				Int("part", part.Number).
				Str("symbol_at", pt.String()).
				Msg("part number\n" + s.grid.Window(from, to))
			break
		}
	}

	return numbers, nil
}

// GearRatios scans for the marker and returns, in ascending order, the product
// of the two parts touching each marker that touches exactly two parts. Pairs
// are keyed by their sorted numbers, so two gears joining the same values
// count once.
func (s *Schematic) GearRatios(marker rune, logger *zerolog.Logger) []int {
	ratios := []int{}
	seen := map[[2]int]bool{}

	for y := range s.grid.Height() {
		for x := range s.grid.Width() {
			pt := grid.Point{X: x, Y: y}
			if s.grid.Get(pt) != marker {
				continue
			}

			touching := s.touchingParts(pt)
			if len(touching) != 2 {
				continue
			}

			a, b := s.parts[touching[0]], s.parts[touching[1]]
			key := [2]int{min(a.Number, b.Number), max(a.Number, b.Number)}
			if seen[key] {
				continue
			}
			seen[key] = true

			logger.Debug().
				Str("gear", pt.String()).
				Int("left", a.Number).
				Int("right", b.Number).
				Msg("gear found")
			ratios = append(ratios, a.Number*b.Number)
		}
	}

	slices.Sort(ratios)
	return ratios
}

func (s *Schematic) touchingParts(pt grid.Point) []int {
	var touching []int
	for _, n := range pt.Neighbors() {
		if !unicode.IsDigit(s.grid.Get(n)) {
			continue
		}
		idx, ok := s.PartAt(n)
		if !ok {
			continue
		}
		if !slices.Contains(touching, idx) {
			touching = append(touching, idx)
		}
	}
	return touching
}

type Solver struct {
	marker rune
	logger *zerolog.Logger
}

func New(marker rune, logger *zerolog.Logger) *Solver {
	return &Solver{
		marker: marker,
		logger: logger,
	}
}

func (s *Solver) Day() int {
	return day
}

func (s *Solver) Reduction(int) puzzle.Reduction {
	return puzzle.ReduceSum
}

func (s *Solver) Part1(lines []string) ([]int, error) {
	schematic, err := NewSchematic(lines)
	if err != nil {
		return nil, err
	}
	return schematic.PartNumbers(s.logger)
}

func (s *Solver) Part2(lines []string) ([]int, error) {
	schematic, err := NewSchematic(lines)
	if err != nil {
		return nil, err
	}
	return schematic.GearRatios(s.marker, s.logger), nil
}
