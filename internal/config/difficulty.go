package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (expected easy, normal or hard)", ErrInvalidConfig, name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplyPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Pursuers.Speed = slowerSpeed(cfg.Grid.CellSize, cfg.Pursuers.Speed)
		cfg.Pursuers.ScatterTicks *= 2
		cfg.Pursuers.PelletScatterTicks *= 2
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Pursuers.Speed = fasterSpeed(cfg.Grid.CellSize, cfg.Pursuers.Speed)
		cfg.Pursuers.ScatterTicks /= 2
		cfg.Pursuers.PelletScatterTicks /= 2
	}
}

// slowerSpeed returns the next lower speed that still divides the cell size.
func slowerSpeed(cellSize, speed int) int {
	for s := speed - 1; s >= 1; s-- {
		if cellSize%s == 0 {
			return s
		}
	}
	return speed
}

// fasterSpeed returns the next higher speed that still divides the cell size.
func fasterSpeed(cellSize, speed int) int {
	for s := speed + 1; s <= cellSize; s++ {
		if cellSize%s == 0 {
			return s
		}
	}
	return speed
}
