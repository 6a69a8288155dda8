package aoc2023day02

import (
	"fmt"
	"strings"

	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/povarna/aoc-solvers/internal/utils"
)

const day = 2

// Draw is one handful of cubes, counted per color.
type Draw map[string]int

type Game struct {
	ID    int
	Draws []Draw
}

// Possible reports whether every draw fits within the bag. A color missing
// from the bag has no cubes of that color.
func (g Game) Possible(bag map[string]int) bool {
	for _, draw := range g.Draws {
		for color, count := range draw {
			if count > bag[color] {
				return false
			}
		}
	}
	return true
}

// Power multiplies the fewest cubes of each seen color that make the game
// possible.
func (g Game) Power() int {
	fewest := map[string]int{}
	for _, draw := range g.Draws {
		for color, count := range draw {
			fewest[color] = max(fewest[color], count)
		}
	}

	power := 1
	for _, count := range fewest {
		power *= count
	}
	return power
}

type Solver struct {
	bag map[string]int
}

func New(bag map[string]int) *Solver {
	return &Solver{
		bag: bag,
	}
}

func (s *Solver) Day() int {
	return day
}

func (s *Solver) Reduction(int) puzzle.Reduction {
	return puzzle.ReduceSum
}

// Part1 returns the ids of the games possible with the configured bag.
func (s *Solver) Part1(lines []string) ([]int, error) {
	games, err := parseGames(lines)
	if err != nil {
		return nil, err
	}

	ids := []int{}
	for _, game := range games {
		if game.Possible(s.bag) {
			ids = append(ids, game.ID)
		}
	}
	return ids, nil
}

func (s *Solver) Part2(lines []string) ([]int, error) {
	games, err := parseGames(lines)
	if err != nil {
		return nil, err
	}

	powers := make([]int, 0, len(games))
	for _, game := range games {
		powers = append(powers, game.Power())
	}
	return powers, nil
}

func parseGames(lines []string) ([]Game, error) {
	games := []Game{}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		game, err := parseGame(line)
		if err != nil {
			return nil, puzzle.NewParseError(day, i+1, line, err.Error())
		}
		games = append(games, game)
	}
	return games, nil
}

// parseGame reads "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func parseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':'")
	}

	headerFields := strings.Fields(header)
	if len(headerFields) != 2 || headerFields[0] != "Game" {
		return Game{}, fmt.Errorf("expected 'Game <id>', got %q", header)
	}
	id, err := utils.ToInt(headerFields[1])
	if err != nil {
		return Game{}, err
	}

	game := Game{ID: id}
	for _, drawStr := range strings.Split(body, ";") {
		draw := Draw{}
		for _, cubes := range strings.Split(drawStr, ",") {
			fields := strings.Fields(cubes)
			if len(fields) == 0 {
				continue
			}
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("expected '<count> <color>', got %q", strings.TrimSpace(cubes))
			}
			count, err := utils.ToInt(fields[0])
			if err != nil {
				return Game{}, err
			}
			draw[fields[1]] += count
		}
		game.Draws = append(game.Draws, draw)
	}

	return game, nil
}
