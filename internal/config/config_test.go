package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got, want := embeddedDefault(), DefaultPacmanConfig(); got != want {
		t.Errorf("embedded defaults %+v differ from DefaultPacmanConfig() %+v", got, want)
	}
	if err := DefaultPacmanConfig().Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  lives: 7\ncollision:\n  tolerance: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Player.Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Collision.Tolerance != 6 {
		t.Errorf("Collision.Tolerance = %d, expected 6", cfg.Collision.Tolerance)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Player.Speed != 2 || cfg.Grid.CellSize != 24 || cfg.Scoring.CoinPoints != 10 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*PacmanConfig)
		ok     bool
	}{
		{"defaults", func(*PacmanConfig) {}, true},
		{"zero cell size", func(c *PacmanConfig) { c.Grid.CellSize = 0 }, false},
		{"zero player speed", func(c *PacmanConfig) { c.Player.Speed = 0 }, false},
		{"speed does not divide cell", func(c *PacmanConfig) { c.Player.Speed = 5 }, false},
		{"pursuer faster than cell", func(c *PacmanConfig) { c.Pursuers.Speed = 48 }, false},
		{"no lives", func(c *PacmanConfig) { c.Player.Lives = 0 }, false},
		{"negative scatter", func(c *PacmanConfig) { c.Pursuers.ScatterTicks = -1 }, false},
		{"scatter without chase", func(c *PacmanConfig) { c.Pursuers.ChaseTicks = 0 }, false},
		{"always chase", func(c *PacmanConfig) { c.Pursuers.ScatterTicks = 0; c.Pursuers.ChaseTicks = 0 }, true},
		{"tolerance too small", func(c *PacmanConfig) { c.Collision.Tolerance = 1 }, false},
		{"tolerance exactly enough", func(c *PacmanConfig) { c.Player.Speed = 3; c.Pursuers.Speed = 4; c.Collision.Tolerance = 3 }, true},
		{"tolerance as wide as cell", func(c *PacmanConfig) { c.Collision.Tolerance = 24 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPresetKeepsConfigValid(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultPacmanConfig()
		ApplyPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produced invalid config: %v", preset, err)
		}
	}

	easy := DefaultPacmanConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Pursuers.Speed != 1 || easy.Player.Lives != 5 {
		t.Errorf("easy preset: speed %d lives %d, expected 1 and 5", easy.Pursuers.Speed, easy.Player.Lives)
	}

	hard := DefaultPacmanConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Pursuers.Speed != 3 || hard.Player.Lives != 2 {
		t.Errorf("hard preset: speed %d lives %d, expected 3 and 2", hard.Pursuers.Speed, hard.Player.Lives)
	}

	normal := DefaultPacmanConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultPacmanConfig() {
		t.Error("normal preset should not change the config")
	}
}
