// Package storm implements level 6: wander the arena collecting drama,
// but not too much of it.
package storm

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/session"
)

const levelNumber = 6

// Game implements the collector level.
type Game struct {
	cfg config.StormConfig

	sess   *session.Session
	player core.Vec
	dt     time.Duration
	tick   uint64
	paused bool
}

// New creates the level from its table.
func New(cfg config.StormConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("level-6", func(d registry.Deps) registry.Game {
		return New(d.Levels.Storm)
	})
}

// ID returns the route of this level.
func (g *Game) ID() string { return "level-6" }

// Title returns the display name.
func (g *Game) Title() string { return "Storm" }

// Level returns the campaign position.
func (g *Game) Level() int { return levelNumber }

// scatter drops icons anywhere inside the arena margin.
type scatter struct {
	pool     session.Pool
	lo, span float64
}

func (s scatter) Spawn(rng *rand.Rand) session.Entity {
	opt := s.pool.Pick(rng)
	return session.Entity{
		Pos:      core.Vec{X: s.lo + rng.Float64()*s.span, Y: s.lo + rng.Float64()*s.span},
		Kind:     opt.Kind,
		Category: opt.Category,
	}
}

func (g *Game) pool() session.Pool {
	var p session.Pool
	for _, k := range g.cfg.DramaIcons {
		p = append(p, session.SpawnOption{Kind: k, Category: session.CategoryCorrect, Weight: g.cfg.DramaWeight})
	}
	for _, k := range g.cfg.SilenceIcons {
		p = append(p, session.SpawnOption{Kind: k, Category: session.CategoryIncorrect, Weight: g.cfg.SilenceWeight})
	}
	return p
}

// Reset puts the player in the middle of an empty arena.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.sess = session.New(session.Config{
		Duration:      g.cfg.DurationSecs,
		SpawnInterval: config.Ms(g.cfg.SpawnIntervalMS),
		MaxEntities:   g.cfg.MaxIcons,
		Band:          session.Band{Min: g.cfg.BandMin, Max: g.cfg.BandMax},
		XP: session.XPRule{
			Correct:         g.cfg.XP.Correct,
			Incorrect:       g.cfg.XP.Incorrect,
			PerSecondInBand: g.cfg.XP.PerSecondInBand,
			Completion:      g.cfg.XP.Completion,
		},
		Spawner: scatter{
			pool: g.pool(),
			lo:   g.cfg.SpawnMargin,
			span: g.cfg.ArenaSize - 2*g.cfg.SpawnMargin,
		},
	}, cfg.Seed)
	g.player = core.Vec{X: g.cfg.ArenaSize / 2, Y: g.cfg.ArenaSize / 2}
	g.dt = cfg.TickDuration()
	g.tick = 0
	g.paused = false
}

// Step advances the level by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.sess.Phase() == core.PhaseNotStarted {
		if in.Has(core.ActionConfirm) {
			g.sess.Start()
		}
		return core.StepResult{State: g.State()}
	}
	if g.sess.Phase().Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dx, dy := in.Direction()
	if dx != 0 || dy != 0 {
		g.player.X = core.ClampF(g.player.X+float64(dx)*g.cfg.MoveStep, g.cfg.MinPos, g.cfg.MaxPos)
		g.player.Y = core.ClampF(g.player.Y+float64(dy)*g.cfg.MoveStep, g.cfg.MinPos, g.cfg.MaxPos)
		g.sess.CountMove()
	}

	g.sess.Advance(g.dt)
	g.collect()
	return core.StepResult{State: g.State()}
}

// collect picks up every icon within reach of the player.
func (g *Game) collect() {
	for _, e := range g.sess.Entities() {
		if !g.sess.Active() {
			return
		}
		if core.Dist(g.player, e.Pos) <= g.cfg.CollectRadius {
			g.sess.Resolve(e.ID)
		}
	}
}

// Abort abandons the attempt.
func (g *Game) Abort() { g.sess.Abort() }

// State returns the current state.
func (g *Game) State() core.GameState {
	st := g.sess.State()
	st.Paused = g.paused
	return st
}

// Render draws the arena, the icons and the player.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	band := core.ColorRed
	if g.sess.Correct() >= g.cfg.BandMin {
		band = core.ColorGreen
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Storm  Time: %2d  XP: %d  Silence: %d  ",
		g.sess.TimeRemaining(), g.sess.XP(), g.sess.Incorrect()), core.ColorPink)
	dst.DrawTextColored(52, 0, fmt.Sprintf("Drama: %d (%d-%d)", g.sess.Correct(), g.cfg.BandMin, g.cfg.BandMax), band)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	arena := core.NewRect(0, 2, dst.Width(), dst.Height()-2)
	dst.DrawBoxColored(arena, core.ColorGray)
	inner := core.NewRect(arena.X+1, arena.Y+1, arena.W-2, arena.H-2)

	for _, e := range g.sess.Entities() {
		x, y := inner.Project(e.Pos, g.cfg.ArenaSize, g.cfg.ArenaSize)
		r, c := 'z', core.ColorBlue
		if e.Category == session.CategoryCorrect {
			r, c = '*', core.ColorYellow
		}
		dst.SetColored(x, y, r, c)
	}
	x, y := inner.Project(g.player, g.cfg.ArenaSize, g.cfg.ArenaSize)
	dst.SetColored(x, y, '♥', core.ColorPink)

	switch {
	case g.sess.Phase() == core.PhaseNotStarted:
		dst.DrawOverlay(core.ColorPink, "Storm",
			fmt.Sprintf("Collect between %d and %d dramas before time runs out.", g.cfg.BandMin, g.cfg.BandMax),
			"More than that and the storm wins. Arrows move.", "Press Enter to start")
	case g.paused:
		dst.DrawOverlay(core.ColorYellow, "Paused", "Press P to continue")
	}
}
