package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
)

// hitbox returns the square of side 2*tolerance+1 centred on an agent.
func hitbox(at Point, tolerance int) core.Rect {
	side := 2*tolerance + 1
	return core.NewRect(at.X-tolerance, at.Y-tolerance, side, side)
}

// colliding reports whether two agents touch: both axis offsets must fit in
// the tolerance window.
func colliding(a, b Point, tolerance int) bool {
	return hitbox(a, tolerance).Contains(b.X, b.Y)
}

// award scores a consumed tile and reacts to power pellets.
func (s *Session) award(t maze.Tile) {
	switch t {
	case maze.Coin:
		s.player.Score += s.rules.CoinPoints
	case maze.PowerPellet:
		s.player.Score += s.rules.PelletPoints
		s.modes.ForceScatter()
	}
	s.remaining--
}

// win ends the round as cleared and pays out the bonus.
func (s *Session) win() {
	s.player.Won = true
	s.bonus = s.rules.Bonus(s.ElapsedSeconds(), s.player.Lives)
	s.player.Score += s.bonus
}

// checkCollisions costs the player a life when any pursuer touches it.
// At most one life is lost per tick.
func (s *Session) checkCollisions() {
	for _, p := range s.pursuers {
		if colliding(s.player.Pos, p.Pos, s.rules.Tolerance) {
			s.loseLife()
			return
		}
	}
}

// loseLife removes a life and either ends the game or sends every agent
// back to its spawn.
func (s *Session) loseLife() {
	s.player.Lives--
	if s.player.Lives <= 0 {
		s.player.Lives = 0
		s.player.Dead = true
		return
	}

	s.player.respawn()
	for _, p := range s.pursuers {
		p.respawn()
	}
	s.modes.Reset()
}
