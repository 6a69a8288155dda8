package aoc2023day05

// Rule maps the half-open source range [Source, Source+Length) onto the
// range starting at Dest.
type Rule struct {
	Dest   int
	Source int
	Length int
}

func (r Rule) Contains(x int) bool {
	return r.Source <= x && x < r.Source+r.Length
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Empty() bool {
	return iv.Start >= iv.End
}

// RangeMap is one named stage of the almanac, e.g. seed-to-soil.
type RangeMap struct {
	From  string
	To    string
	Rules []Rule
}

// Lookup maps x through the first rule containing it. The second result is
// false when no rule contains x, in which case x is returned unchanged.
func (m RangeMap) Lookup(x int) (int, bool) {
	for _, r := range m.Rules {
		if r.Contains(x) {
			return r.Dest + (x - r.Source), true
		}
	}
	return x, false
}

// Map is Lookup with the identity fallback applied.
func (m RangeMap) Map(x int) int {
	y, _ := m.Lookup(x)
	return y
}

// MapInterval maps a whole interval, splitting it at rule boundaries. Pieces
// no rule covers are passed through unchanged.
func (m RangeMap) MapInterval(iv Interval) []Interval {
	var mapped []Interval
	pending := []Interval{iv}

	for _, r := range m.Rules {
		var next []Interval
		for _, p := range pending {
			overlap := Interval{Start: max(p.Start, r.Source), End: min(p.End, r.Source+r.Length)}
			if overlap.Empty() {
				next = append(next, p)
				continue
			}

			offset := r.Dest - r.Source
			mapped = append(mapped, Interval{Start: overlap.Start + offset, End: overlap.End + offset})
			if p.Start < overlap.Start {
				next = append(next, Interval{Start: p.Start, End: overlap.Start})
			}
			if overlap.End < p.End {
				next = append(next, Interval{Start: overlap.End, End: p.End})
			}
		}
		pending = next
	}

	return append(mapped, pending...)
}
