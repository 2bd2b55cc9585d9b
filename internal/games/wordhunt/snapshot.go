package wordhunt

import "github.com/vovakirdan/love-no-jutsu/internal/wordsearch"

// Snapshot captures the level state for determinism tests.
type Snapshot struct {
	Tick   uint64
	Phase  string
	Grid   string
	Found  []string
	Cursor wordsearch.Cell
	XP     int
}

// Snapshot returns the current level snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Phase:  g.sess.Phase().String(),
		Grid:   g.puzzle.Grid().String(),
		Found:  g.puzzle.Found(),
		Cursor: g.cursor,
		XP:     g.sess.XP(),
	}
}
