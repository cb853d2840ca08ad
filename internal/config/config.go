// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PacmanConfig contains all tunable parameters of the maze chase.
type PacmanConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Player    PlayerConfig    `yaml:"player"`
	Pursuers  PursuerConfig   `yaml:"pursuers"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Collision CollisionConfig `yaml:"collision"`
}

// GridConfig defines the pixel geometry of the maze.
type GridConfig struct {
	CellSize int `yaml:"cell_size"` // Pixel width and height of one maze cell
}

// PlayerConfig defines player movement and lives.
type PlayerConfig struct {
	Speed int `yaml:"speed"` // Pixels per tick
	Lives int `yaml:"lives"`
}

// PursuerConfig defines pursuer movement and the chase/scatter schedule.
type PursuerConfig struct {
	Speed              int `yaml:"speed"`                // Pixels per tick
	ScatterTicks       int `yaml:"scatter_ticks"`        // Length of a scheduled scatter phase; 0 = always chase
	ChaseTicks         int `yaml:"chase_ticks"`          // Length of a scheduled chase phase
	PelletScatterTicks int `yaml:"pellet_scatter_ticks"` // Forced scatter after a power pellet; 0 = none
}

// ScoringConfig defines points and the end-of-round bonus policy.
type ScoringConfig struct {
	CoinPoints         int `yaml:"coin_points"`
	PelletPoints       int `yaml:"pellet_points"`
	TimeBudgetSeconds  int `yaml:"time_budget_seconds"`   // Bonus time counts down from here
	TimeBonusPerSecond int `yaml:"time_bonus_per_second"` // Points per second left in the budget
	LifeBonus          int `yaml:"life_bonus"`            // Points per remaining life
}

// CollisionConfig defines the player/pursuer contact window.
type CollisionConfig struct {
	Tolerance int `yaml:"tolerance"` // Max pixel offset on each axis that still counts as contact
}

// Validate checks that the configuration can drive a session.
func (c PacmanConfig) Validate() error {
	cs := c.Grid.CellSize
	if cs <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, cs)
	}

	speeds := []struct {
		name  string
		value int
	}{
		{"player.speed", c.Player.Speed},
		{"pursuers.speed", c.Pursuers.Speed},
	}
	for _, s := range speeds {
		if s.value <= 0 || s.value > cs {
			return fmt.Errorf("%w: %s must be in 1..%d, got %d", ErrInvalidConfig, s.name, cs, s.value)
		}
		if cs%s.value != 0 {
			return fmt.Errorf("%w: %s (%d) must divide cell_size (%d)", ErrInvalidConfig, s.name, s.value, cs)
		}
	}

	if c.Player.Lives < 1 {
		return fmt.Errorf("%w: player.lives must be at least 1, got %d", ErrInvalidConfig, c.Player.Lives)
	}

	if c.Pursuers.ScatterTicks < 0 || c.Pursuers.ChaseTicks < 0 || c.Pursuers.PelletScatterTicks < 0 {
		return fmt.Errorf("%w: pursuer phase lengths must not be negative", ErrInvalidConfig)
	}
	if c.Pursuers.ScatterTicks > 0 && c.Pursuers.ChaseTicks == 0 {
		return fmt.Errorf("%w: chase_ticks must be set when scatter_ticks is", ErrInvalidConfig)
	}

	// Agents approaching each other head-on close the gap by the sum of
	// their speeds per tick; the window must be wide enough to catch them.
	tol := c.Collision.Tolerance
	if tol < 0 {
		return fmt.Errorf("%w: collision.tolerance must not be negative", ErrInvalidConfig)
	}
	if 2*tol+1 < c.Player.Speed+c.Pursuers.Speed {
		return fmt.Errorf("%w: collision.tolerance %d lets agents moving at %d and %d pass through each other",
			ErrInvalidConfig, tol, c.Player.Speed, c.Pursuers.Speed)
	}
	if tol >= cs {
		return fmt.Errorf("%w: collision.tolerance must be smaller than cell_size", ErrInvalidConfig)
	}

	return nil
}
