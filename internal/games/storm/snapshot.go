package storm

import "github.com/vovakirdan/love-no-jutsu/internal/core"

// Snapshot captures the level state for determinism tests.
type Snapshot struct {
	Tick          uint64
	Phase         string
	TimeRemaining int
	Player        core.Vec
	Icons         []core.Vec
	Drama         int
	Silence       int
	XP            int
}

// Snapshot returns the current level snapshot.
func (g *Game) Snapshot() Snapshot {
	var icons []core.Vec
	for _, e := range g.sess.Entities() {
		icons = append(icons, e.Pos)
	}
	return Snapshot{
		Tick:          g.tick,
		Phase:         g.sess.Phase().String(),
		TimeRemaining: g.sess.TimeRemaining(),
		Player:        g.player,
		Icons:         icons,
		Drama:         g.sess.Correct(),
		Silence:       g.sess.Incorrect(),
		XP:            g.sess.XP(),
	}
}
