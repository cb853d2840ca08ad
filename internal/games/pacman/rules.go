package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/config"
)

// Rules holds the constants a session runs with.
type Rules struct {
	CellSize     int // Pixel size of a maze cell
	PlayerSpeed  int // Pixels per tick; must divide CellSize
	PursuerSpeed int // Pixels per tick; must divide CellSize
	Lives        int
	TickRate     int // Ticks per second, used to measure elapsed time

	CoinPoints   int
	PelletPoints int
	Tolerance    int // Collision window in pixels on each axis

	ScatterTicks       int
	ChaseTicks         int
	PelletScatterTicks int

	TimeBudgetSeconds  int
	TimeBonusPerSecond int
	LifeBonus          int
}

// RulesFromConfig builds session rules from a validated configuration.
func RulesFromConfig(cfg config.PacmanConfig, tickRate int) Rules {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Rules{
		CellSize:           cfg.Grid.CellSize,
		PlayerSpeed:        cfg.Player.Speed,
		PursuerSpeed:       cfg.Pursuers.Speed,
		Lives:              cfg.Player.Lives,
		TickRate:           tickRate,
		CoinPoints:         cfg.Scoring.CoinPoints,
		PelletPoints:       cfg.Scoring.PelletPoints,
		Tolerance:          cfg.Collision.Tolerance,
		ScatterTicks:       cfg.Pursuers.ScatterTicks,
		ChaseTicks:         cfg.Pursuers.ChaseTicks,
		PelletScatterTicks: cfg.Pursuers.PelletScatterTicks,
		TimeBudgetSeconds:  cfg.Scoring.TimeBudgetSeconds,
		TimeBonusPerSecond: cfg.Scoring.TimeBonusPerSecond,
		LifeBonus:          cfg.Scoring.LifeBonus,
	}
}

// DefaultRules returns the rules of the default configuration at 60 ticks/s.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultPacmanConfig(), 60)
}

// Bonus returns the end-of-round bonus for clearing the maze after
// elapsedSeconds with lives to spare.
func (r Rules) Bonus(elapsedSeconds, lives int) int {
	timeLeft := max(0, r.TimeBudgetSeconds-elapsedSeconds)
	return timeLeft*r.TimeBonusPerSecond + lives*r.LifeBonus
}
