package balance

// Snapshot captures the level state for determinism tests.
type Snapshot struct {
	Tick          uint64
	Phase         string
	TimeRemaining int
	Meters        [2]float64
	Balanced      int
	XP            int
}

// Snapshot returns the current level snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		Phase:         g.sess.Phase().String(),
		TimeRemaining: g.sess.TimeRemaining(),
		Meters:        g.meters,
		Balanced:      g.balanced,
		XP:            g.sess.XP(),
	}
}
