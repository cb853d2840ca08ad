package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default configuration.
// Mirrors defaults/pacman.yaml and is used if the embedded file cannot be parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Grid: GridConfig{
			CellSize: 24,
		},
		Player: PlayerConfig{
			Speed: 2,
			Lives: 3,
		},
		Pursuers: PursuerConfig{
			Speed:              2,
			ScatterTicks:       420,
			ChaseTicks:         1200,
			PelletScatterTicks: 360,
		},
		Scoring: ScoringConfig{
			CoinPoints:         10,
			PelletPoints:       50,
			TimeBudgetSeconds:  300,
			TimeBonusPerSecond: 10,
			LifeBonus:          500,
		},
		Collision: CollisionConfig{
			Tolerance: 4,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
