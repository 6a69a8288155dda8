package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"
)

const (
	defaultConfigPath = "configs/puzzles.yaml"
	cardFaces         = "23456789TJQKA"
)

// Default returns the rules of the published puzzles.
func Default() *PuzzleConfig {
	cfg := &PuzzleConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadPuzzleConfig reads the file named by PUZZLES_CONFIG_PATH, falling back
// to configs/puzzles.yaml. A missing default file yields Default().
func LoadPuzzleConfig() (*PuzzleConfig, error) {
	path := os.Getenv("PUZZLES_CONFIG_PATH")
	if path == "" {
		cfg, err := LoadPuzzleConfigFrom(defaultConfigPath)
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, err
	}

	return LoadPuzzleConfigFrom(path)
}

func LoadPuzzleConfigFrom(path string) (*PuzzleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg PuzzleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *PuzzleConfig) {
	if len(cfg.CubeGame.Bag) == 0 {
		cfg.CubeGame.Bag = map[string]int{
			"red":   12,
			"green": 13,
			"blue":  14,
		}
	} else {
		cfg.CubeGame.Bag = maps.Clone(cfg.CubeGame.Bag)
	}

	if cfg.GearRatios.Marker == "" {
		cfg.GearRatios.Marker = "*"
	}

	if cfg.CamelCards.Wildcard == "" {
		cfg.CamelCards.Wildcard = "J"
	}
}

func (c *PuzzleConfig) Validate() error {
	for color, limit := range c.CubeGame.Bag {
		if color == "" {
			return errors.New("cube_game.bag: empty color name")
		}
		if limit < 0 {
			return fmt.Errorf("cube_game.bag: negative limit %d for %q", limit, color)
		}
	}

	marker := c.GearRatios.Marker
	if utf8.RuneCountInString(marker) != 1 {
		return fmt.Errorf("gear_ratios.marker must be a single character, got %q", marker)
	}
	if marker == "." || (marker >= "0" && marker <= "9") {
		return fmt.Errorf("gear_ratios.marker %q collides with blank cells or digits", marker)
	}

	wildcard := c.CamelCards.Wildcard
	if len(wildcard) != 1 || !strings.Contains(cardFaces, wildcard) {
		return fmt.Errorf("camel_cards.wildcard must be one of %s, got %q", cardFaces, wildcard)
	}

	return nil
}
