package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "puzzles.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadPuzzleConfig_Success(t *testing.T) {
	path := writeConfig(t, `cube_game:
  bag:
    red: 4
    green: 3
    blue: 6

gear_ratios:
  marker: "#"

camel_cards:
  wildcard: "2"
`)
	t.Setenv("PUZZLES_CONFIG_PATH", path)

	cfg, err := LoadPuzzleConfig()
	if err != nil {
		t.Fatalf("LoadPuzzleConfig() failed: %v", err)
	}

	if cfg.CubeGame.Bag["red"] != 4 || cfg.CubeGame.Bag["green"] != 3 || cfg.CubeGame.Bag["blue"] != 6 {
		t.Errorf("Unexpected bag: %v", cfg.CubeGame.Bag)
	}
	if cfg.GearRatios.MarkerRune() != '#' {
		t.Errorf("Expected marker '#', got %q", cfg.GearRatios.MarkerRune())
	}
	if cfg.CamelCards.WildcardByte() != '2' {
		t.Errorf("Expected wildcard '2', got %q", cfg.CamelCards.WildcardByte())
	}
}

func TestLoadPuzzleConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `gear_ratios:
  marker: "@"
`)

	cfg, err := LoadPuzzleConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadPuzzleConfigFrom() failed: %v", err)
	}

	if cfg.GearRatios.MarkerRune() != '@' {
		t.Errorf("Expected marker '@', got %q", cfg.GearRatios.MarkerRune())
	}
	if cfg.CubeGame.Bag["red"] != 12 || cfg.CubeGame.Bag["green"] != 13 || cfg.CubeGame.Bag["blue"] != 14 {
		t.Errorf("Expected default bag, got %v", cfg.CubeGame.Bag)
	}
	if cfg.CamelCards.Wildcard != "J" {
		t.Errorf("Expected default wildcard J, got %q", cfg.CamelCards.Wildcard)
	}
}

func TestLoadPuzzleConfig_MissingDefaultFile(t *testing.T) {
	t.Setenv("PUZZLES_CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := LoadPuzzleConfig()
	if err != nil {
		t.Fatalf("LoadPuzzleConfig() failed: %v", err)
	}
	if cfg.GearRatios.Marker != "*" {
		t.Errorf("Expected default marker, got %q", cfg.GearRatios.Marker)
	}
}

func TestLoadPuzzleConfig_FileNotFound(t *testing.T) {
	t.Setenv("PUZZLES_CONFIG_PATH", "/nonexistent/path/puzzles.yaml")

	_, err := LoadPuzzleConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadPuzzleConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "cube_game: [unclosed\n")

	_, err := LoadPuzzleConfigFrom(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *PuzzleConfig)
		wantErr string
	}{
		{"defaults", func(cfg *PuzzleConfig) {}, ""},
		{"negative limit", func(cfg *PuzzleConfig) { cfg.CubeGame.Bag["red"] = -1 }, "negative limit"},
		{"empty color", func(cfg *PuzzleConfig) { cfg.CubeGame.Bag[""] = 1 }, "empty color"},
		{"long marker", func(cfg *PuzzleConfig) { cfg.GearRatios.Marker = "**" }, "single character"},
		{"digit marker", func(cfg *PuzzleConfig) { cfg.GearRatios.Marker = "7" }, "collides"},
		{"blank marker", func(cfg *PuzzleConfig) { cfg.GearRatios.Marker = "." }, "collides"},
		{"unknown wildcard", func(cfg *PuzzleConfig) { cfg.CamelCards.Wildcard = "X" }, "camel_cards.wildcard"},
		{"multi-card wildcard", func(cfg *PuzzleConfig) { cfg.CamelCards.Wildcard = "JQ" }, "camel_cards.wildcard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() failed: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	base := Default()
	if base.Fingerprint() != Default().Fingerprint() {
		t.Error("equal configs must share a fingerprint")
	}
	if len(base.Fingerprint()) != 12 {
		t.Errorf("unexpected fingerprint %q", base.Fingerprint())
	}

	wildcard := Default()
	wildcard.CamelCards.Wildcard = "Q"

	marker := Default()
	marker.GearRatios.Marker = "#"

	bag := Default()
	bag.CubeGame.Bag["red"] = 20

	for name, cfg := range map[string]*PuzzleConfig{"wildcard": wildcard, "marker": marker, "bag": bag} {
		if cfg.Fingerprint() == base.Fingerprint() {
			t.Errorf("changing the %s must change the fingerprint", name)
		}
	}
}
