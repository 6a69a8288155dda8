package aoc2023day07

import (
	"cmp"
	"slices"
	"strings"
)

type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	default:
		return "unknown"
	}
}

const (
	cardOrder = "23456789TJQKA"
	handSize  = 5
)

type Hand struct {
	Cards string
	Bet   int
}

// Rules ranks hands. A zero Wildcard disables wildcard scoring; otherwise
// that card counts as whatever helps the hand most and ranks below every
// other card when breaking ties.
type Rules struct {
	Wildcard byte
}

func (r Rules) Rank(card byte) int {
	if r.Wildcard != 0 && card == r.Wildcard {
		return -1
	}
	return strings.IndexByte(cardOrder, card)
}

func (r Rules) Classify(cards string) Category {
	counts := map[byte]int{}
	wild := 0
	for i := 0; i < len(cards); i++ {
		if r.Wildcard != 0 && cards[i] == r.Wildcard {
			wild++
			continue
		}
		counts[cards[i]]++
	}

	freq := make([]int, 0, len(counts))
	for _, n := range counts {
		freq = append(freq, n)
	}
	slices.SortFunc(freq, func(a, b int) int { return cmp.Compare(b, a) })

	// pad so short or all-wild hands still have a top two
	freq = append(freq, 0, 0)
	freq[0] += wild

	switch {
	case freq[0] == 5:
		return FiveOfAKind
	case freq[0] == 4:
		return FourOfAKind
	case freq[0] == 3 && freq[1] == 2:
		return FullHouse
	case freq[0] == 3:
		return ThreeOfAKind
	case freq[0] == 2 && freq[1] == 2:
		return TwoPair
	case freq[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders hands by category, then card by card from the left.
func (r Rules) Compare(a, b Hand) int {
	if c := cmp.Compare(r.Classify(a.Cards), r.Classify(b.Cards)); c != 0 {
		return c
	}
	for i := 0; i < len(a.Cards) && i < len(b.Cards); i++ {
		if c := cmp.Compare(r.Rank(a.Cards[i]), r.Rank(b.Cards[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings sorts hands from weakest to strongest and returns rank*bet for
// each of them in that order.
func (r Rules) Winnings(hands []Hand) []int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, r.Compare)

	winnings := make([]int, len(sorted))
	for i, h := range sorted {
		winnings[i] = (i + 1) * h.Bet
	}
	return winnings
}
