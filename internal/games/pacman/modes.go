package pacman

// ModePolicy schedules the chase/scatter mode shared by all pursuers.
//
// Rounds open with a scatter phase, then alternate chase and scatter
// phases of fixed length. A power pellet forces scatter for a while on top
// of the schedule. With no scatter phase configured pursuers always chase.
type ModePolicy struct {
	scatterTicks int
	chaseTicks   int
	pelletTicks  int

	tick   int
	forced int // Ticks of pellet scatter left
}

// NewModePolicy creates a policy with the given phase lengths in ticks.
func NewModePolicy(scatterTicks, chaseTicks, pelletTicks int) *ModePolicy {
	return &ModePolicy{
		scatterTicks: scatterTicks,
		chaseTicks:   chaseTicks,
		pelletTicks:  pelletTicks,
	}
}

// Mode returns the mode for the current tick.
func (m *ModePolicy) Mode() Mode {
	if m.forced > 0 {
		return ModeScatter
	}
	if m.scatterTicks <= 0 {
		return ModeChase
	}
	if m.tick%(m.scatterTicks+m.chaseTicks) < m.scatterTicks {
		return ModeScatter
	}
	return ModeChase
}

// Advance moves the schedule forward by one tick.
func (m *ModePolicy) Advance() {
	m.tick++
	if m.forced > 0 {
		m.forced--
	}
}

// ForceScatter starts (or restarts) the power pellet scatter window.
func (m *ModePolicy) ForceScatter() {
	if m.pelletTicks > m.forced {
		m.forced = m.pelletTicks
	}
}

// Forced returns the ticks left in the pellet scatter window.
func (m *ModePolicy) Forced() int {
	return m.forced
}

// Reset restarts the schedule from its first phase.
func (m *ModePolicy) Reset() {
	m.tick = 0
	m.forced = 0
}
