package pacman

// StateType represents where a session stands.
type StateType string

const (
	StatePlaying StateType = "playing"
	StatePaused  StateType = "paused"
	StateWon     StateType = "won"
	StateDead    StateType = "dead"
	StateExited  StateType = "exited"
)

// PursuerSnapshot is the observable state of one pursuer.
type PursuerSnapshot struct {
	Name string
	X, Y int
	Dir  Direction
	Mode Mode
}

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick      int
	Score     int
	Lives     int
	Remaining int
	PlayerX   int
	PlayerY   int
	PlayerDir Direction
	Queued    Direction
	Pursuers  []PursuerSnapshot
	State     StateType
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.player.Won:
		state = StateWon
	case s.player.Dead:
		state = StateDead
	case s.exited:
		state = StateExited
	}

	pursuers := make([]PursuerSnapshot, len(s.pursuers))
	for i, p := range s.pursuers {
		pursuers[i] = PursuerSnapshot{Name: p.Name, X: p.Pos.X, Y: p.Pos.Y, Dir: p.Dir, Mode: p.Mode}
	}

	return Snapshot{
		Tick:      s.tick,
		Score:     s.player.Score,
		Lives:     s.player.Lives,
		Remaining: s.remaining,
		PlayerX:   s.player.Pos.X,
		PlayerY:   s.player.Pos.Y,
		PlayerDir: s.player.Dir,
		Queued:    s.player.Queued,
		Pursuers:  pursuers,
		State:     state,
	}
}

// Snapshot returns the snapshot of the running session, marking pauses.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	snap := g.session.Snapshot()
	if g.paused && snap.State == StatePlaying {
		snap.State = StatePaused
	}
	return snap
}
