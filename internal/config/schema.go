package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PuzzleConfig holds the tunable puzzle rules handed to the daily solvers.
type PuzzleConfig struct {
	CubeGame   CubeGameConfig   `yaml:"cube_game"`
	GearRatios GearRatiosConfig `yaml:"gear_ratios"`
	CamelCards CamelCardsConfig `yaml:"camel_cards"`
}

// CubeGameConfig contains the bag limits a day 2 game is checked against
type CubeGameConfig struct {
	Bag map[string]int `yaml:"bag"`
}

type GearRatiosConfig struct {
	Marker string `yaml:"marker"`
}

type CamelCardsConfig struct {
	Wildcard string `yaml:"wildcard"`
}

// MarkerRune returns the configured gear marker as a rune.
func (g GearRatiosConfig) MarkerRune() rune {
	for _, r := range g.Marker {
		return r
	}
	return 0
}

// WildcardByte returns the configured wildcard card.
func (c CamelCardsConfig) WildcardByte() byte {
	if c.Wildcard == "" {
		return 0
	}
	return c.Wildcard[0]
}

// Fingerprint digests the effective rules. Equal rules give equal
// fingerprints regardless of map order.
func (c *PuzzleConfig) Fingerprint() string {
	var b strings.Builder
	for _, color := range slices.Sorted(maps.Keys(c.CubeGame.Bag)) {
		fmt.Fprintf(&b, "bag.%s=%d;", color, c.CubeGame.Bag[color])
	}
	fmt.Fprintf(&b, "marker=%s;wildcard=%s", c.GearRatios.Marker, c.CamelCards.Wildcard)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:6])
}
