package puzzle

// Snapshot captures the level state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Phase   string
	Boards  []Board
	Pending []int
	Board   int
	Row     int
	Col     int
	XP      int
}

// Snapshot returns the current level snapshot.
func (g *Game) Snapshot() Snapshot {
	boards := make([]Board, len(g.boards))
	for i, b := range g.boards {
		boards[i] = b.clone()
	}
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.sess.Phase().String(),
		Boards:  boards,
		Pending: g.pending.IDs(),
		Board:   g.board,
		Row:     g.row,
		Col:     g.col,
		XP:      g.sess.XP(),
	}
}
