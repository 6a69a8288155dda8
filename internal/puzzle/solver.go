// Package puzzle holds the contract shared by every daily solver: the
// Solver interface, the reduction that turns per-record values into the
// printed answer, and the error taxonomy used by the parsers.
package puzzle

// Solver solves both parts of a single day. Part1 and Part2 return one value
// per parsed record; an empty input yields an empty, non-nil slice.
type Solver interface {
	Day() int
	Part1(lines []string) ([]int, error)
	Part2(lines []string) ([]int, error)
	Reduction(part int) Reduction
}

// Solve runs the requested part (1 or 2) of the solver.
func Solve(s Solver, part int, lines []string) ([]int, error) {
	switch part {
	case 1:
		return s.Part1(lines)
	case 2:
		return s.Part2(lines)
	default:
		return nil, ErrUnknownPart
	}
}

// Answer is one solved part: the per-record values and their reduction.
type Answer struct {
	Day       int
	Part      int
	Values    []int
	Result    int
	Reduction Reduction
}

// Run solves one part and reduces its values into the answer.
func Run(s Solver, part int, lines []string) (Answer, error) {
	values, err := Solve(s, part, lines)
	if err != nil {
		return Answer{}, err
	}

	reduction := s.Reduction(part)
	return Answer{
		Day:       s.Day(),
		Part:      part,
		Values:    values,
		Result:    reduction.Apply(values),
		Reduction: reduction,
	}, nil
}
