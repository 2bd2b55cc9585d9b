package traits

// Snapshot captures the level state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Order     []int
	Cursor    int
	Zone      int
	Sorted    int
	Incorrect int
	XP        int
}

// Snapshot returns the current level snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.sess.Phase().String(),
		Order:     append([]int(nil), g.order...),
		Cursor:    g.cursor,
		Zone:      g.zone,
		Sorted:    g.engine.Matched(),
		Incorrect: g.sess.Incorrect(),
		XP:        g.sess.XP(),
	}
}
