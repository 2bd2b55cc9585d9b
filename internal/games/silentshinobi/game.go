// Package silentshinobi implements level 2: tap the good things falling
// down the lanes and let the bad ones pass.
package silentshinobi

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/session"
)

const levelNumber = 2

// Game implements the falling-items level.
type Game struct {
	cfg config.ShinobiConfig

	sess   *session.Session
	lane   int
	dt     time.Duration
	tick   uint64
	paused bool
}

// New creates the level from its table.
func New(cfg config.ShinobiConfig) *Game {
	if cfg.Lanes <= 0 {
		cfg.Lanes = 1
	}
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("level-2", func(d registry.Deps) registry.Game {
		return New(d.Levels.SilentShinobi)
	})
}

// ID returns the route of this level.
func (g *Game) ID() string { return "level-2" }

// Title returns the display name.
func (g *Game) Title() string { return "Silent Shinobi" }

// Level returns the campaign position.
func (g *Game) Level() int { return levelNumber }

// spawner drops a weighted item at the top of a random lane.
type spawner struct {
	pool  session.Pool
	lanes int
	y     float64
}

func (s spawner) Spawn(rng *rand.Rand) session.Entity {
	opt := s.pool.Pick(rng)
	return session.Entity{
		Pos:      core.Vec{X: float64(rng.Intn(s.lanes)), Y: s.y},
		Kind:     opt.Kind,
		Category: opt.Category,
	}
}

// faller moves items down and drops them past the bottom edge.
type faller struct {
	step   float64
	bottom float64
}

func (f faller) Move(e *session.Entity) bool {
	e.Pos.Y += f.step
	return e.Pos.Y < f.bottom
}

func (g *Game) pool() session.Pool {
	var p session.Pool
	for _, k := range g.cfg.CorrectItems {
		p = append(p, session.SpawnOption{Kind: k, Category: session.CategoryCorrect, Weight: g.cfg.CorrectWeight})
	}
	for _, k := range g.cfg.WrongItems {
		p = append(p, session.SpawnOption{Kind: k, Category: session.CategoryIncorrect, Weight: g.cfg.WrongWeight})
	}
	return p
}

// Reset prepares a fresh attempt.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.sess = session.New(session.Config{
		Duration:      g.cfg.DurationSecs,
		SpawnInterval: config.Ms(g.cfg.SpawnIntervalMS),
		MotionStep:    config.Ms(g.cfg.MotionStepMS),
		MaxEntities:   g.cfg.MaxItems,
		Band:          session.Band{Min: g.cfg.MinCorrect},
		XP: session.XPRule{
			Correct:    g.cfg.XP.Correct,
			Incorrect:  g.cfg.XP.Incorrect,
			Completion: g.cfg.XP.Completion,
		},
		Spawner: spawner{pool: g.pool(), lanes: g.cfg.Lanes, y: g.cfg.SpawnY},
		Mover:   faller{step: g.cfg.FallPerStep, bottom: g.cfg.RemoveY},
	}, cfg.Seed)
	g.lane = g.cfg.Lanes / 2
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

	dx, _ := in.Direction()
	g.lane = core.Clamp(g.lane+dx, 0, g.cfg.Lanes-1)

	if in.Has(core.ActionSelect) {
		g.tap()
	}

	g.sess.Advance(g.dt)
	return core.StepResult{State: g.State()}
}

// tap resolves the lowest visible item in the cursor lane.
func (g *Game) tap() {
	target, found := 0, false
	lowest := -1.0
	for _, e := range g.sess.Entities() {
		if int(e.Pos.X) != g.lane || e.Pos.Y < 0 || e.Pos.Y > g.cfg.FieldHeight {
			continue
		}
		if e.Pos.Y > lowest {
			lowest, target, found = e.Pos.Y, e.ID, true
		}
	}
	if found {
		g.sess.CountMove()
		g.sess.Resolve(target)
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

// Render draws the lanes, the falling items and the catcher.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Silent Shinobi  Time: %2d  Caught: %d/%d  Misses: %d  Accuracy: %d%%  XP: %d",
		g.sess.TimeRemaining(), g.sess.Correct(), g.cfg.Target, g.sess.Incorrect(), g.sess.Accuracy(), g.sess.XP()),
		core.ColorPink)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	laneW := dst.Width() / g.cfg.Lanes
	field := core.NewRect(0, 2, dst.Width(), dst.Height()-4)
	for l := 1; l < g.cfg.Lanes; l++ {
		for y := field.Y; y < field.Bottom(); y++ {
			dst.SetColored(l*laneW, y, '┆', core.ColorGray)
		}
	}

	for _, e := range g.sess.Entities() {
		if e.Pos.Y < 0 || e.Pos.Y > g.cfg.FieldHeight {
			continue
		}
		_, y := field.Project(e.Pos, 1, g.cfg.FieldHeight)
		color := core.ColorGreen
		if e.Category == session.CategoryIncorrect {
			color = core.ColorRed
		}
		x := int(e.Pos.X)*laneW + (laneW-len([]rune(e.Kind)))/2
		dst.DrawTextColored(x, y, e.Kind, color)
	}

	catcher := "[ ^ ]"
	dst.DrawTextColored(g.lane*laneW+(laneW-len(catcher))/2, field.Bottom(), catcher, core.ColorPink)

	switch {
	case g.sess.Phase() == core.PhaseNotStarted:
		dst.DrawOverlay(core.ColorPink, "Silent Shinobi",
			"Catch what we love, let the silence fall.",
			"Left/Right pick a lane, Space taps.", "Press Enter to start")
	case g.paused:
		dst.DrawOverlay(core.ColorYellow, "Paused", "Press P to continue")
	}
}
