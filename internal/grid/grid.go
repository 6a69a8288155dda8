package grid

import (
	"fmt"
	"strings"
)

// Blank is returned for every coordinate outside the grid.
const Blank = '.'

type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Neighbors returns the eight surrounding points, diagonals included. Points
// may lie outside any grid.
func (p Point) Neighbors() []Point {
	return []Point{
		{p.X - 1, p.Y - 1},
		{p.X, p.Y - 1},
		{p.X + 1, p.Y - 1},
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X - 1, p.Y + 1},
		{p.X, p.Y + 1},
		{p.X + 1, p.Y + 1},
	}
}

// Grid is a 2D grid of runes addressed by (x, y), y being the row.
// Rows may have different lengths.
type Grid struct {
	grid [][]rune
}

func New(lines []string) Grid {
	g := make([][]rune, len(lines))
	for y, line := range lines {
		g[y] = []rune(line)
	}
	return Grid{
		grid: g,
	}
}

func (g Grid) Width() int {
	width := 0
	for _, row := range g.grid {
		width = max(width, len(row))
	}
	return width
}

func (g Grid) Height() int {
	return len(g.grid)
}

func (g Grid) InBounds(p Point) bool {
	return p.Y >= 0 && p.Y < len(g.grid) && p.X >= 0 && p.X < len(g.grid[p.Y])
}

// Get returns the rune at p, or Blank when p is outside the grid.
func (g Grid) Get(p Point) rune {
	if !g.InBounds(p) {
		return Blank
	}
	return g.grid[p.Y][p.X]
}

// Window renders the rectangle between from and to (inclusive), reading
// missing cells as Blank.
func (g Grid) Window(from, to Point) string {
	lines := make([]string, 0, to.Y-from.Y+1)
	for y := from.Y; y <= to.Y; y++ {
		var b strings.Builder
		for x := from.X; x <= to.X; x++ {
			b.WriteRune(g.Get(Point{x, y}))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
