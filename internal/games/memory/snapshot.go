package memory

// Snapshot captures the level state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Phase   string
	Keys    []string // Deck order
	Matched int
	Moves   int
	XP      int
	Cursor  int
}

// Snapshot returns the current level snapshot.
func (g *Game) Snapshot() Snapshot {
	keys := make([]string, len(g.cards))
	for i, c := range g.cards {
		keys[i] = c.Key
	}
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.sess.Phase().String(),
		Keys:    keys,
		Matched: g.engine.Matched(),
		Moves:   g.sess.Moves(),
		XP:      g.sess.XP(),
		Cursor:  g.cursor,
	}
}
