package silentshinobi

import "fmt"

// Snapshot captures the level state for determinism tests.
type Snapshot struct {
	Tick          uint64
	Phase         string
	TimeRemaining int
	Lane          int
	Correct       int
	Incorrect     int
	XP            int
	Items         []string // Kind@lane of the live pool, oldest first
}

// Snapshot returns the current level snapshot.
func (g *Game) Snapshot() Snapshot {
	var items []string
	for _, e := range g.sess.Entities() {
		items = append(items, fmt.Sprintf("%s@%d", e.Kind, int(e.Pos.X)))
	}
	return Snapshot{
		Tick:          g.tick,
		Phase:         g.sess.Phase().String(),
		TimeRemaining: g.sess.TimeRemaining(),
		Lane:          g.lane,
		Correct:       g.sess.Correct(),
		Incorrect:     g.sess.Incorrect(),
		XP:            g.sess.XP(),
		Items:         items,
	}
}
