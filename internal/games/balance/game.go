// Package balance implements level 4: keep the anime and drama meters
// inside the calm band while both keep drifting.
package balance

import (
	"fmt"
	"time"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/session"
)

const (
	levelNumber = 4
	meterMax    = 100.0
)

// Outcome messages.
const (
	ReasonBalanced    = "balanced"
	ReasonNotBalanced = "not balanced long enough"
)

// Game implements the balance level.
type Game struct {
	cfg config.BalanceConfig

	sess     *session.Session
	meters   [2]float64
	balanced int // Seconds spent with both meters in the band
	dt       time.Duration
	tick     uint64
	paused   bool
}

// New creates the level from its table.
func New(cfg config.BalanceConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("level-4", func(d registry.Deps) registry.Game {
		return New(d.Levels.Balance)
	})
}

// ID returns the route of this level.
func (g *Game) ID() string { return "level-4" }

// Title returns the display name.
func (g *Game) Title() string { return "Balance" }

// Level returns the campaign position.
func (g *Game) Level() int { return levelNumber }

// Reset restores the starting meters.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.meters = g.cfg.Start
	g.balanced = 0
	g.sess = session.New(session.Config{
		Duration: g.cfg.DurationSecs,
		XP: session.XPRule{
			Correct:    g.cfg.XP.Correct,
			Completion: g.cfg.XP.Completion,
		},
		OnSecond: g.onSecond,
		Evaluate: g.evaluate,
	}, cfg.Seed)
	g.dt = cfg.TickDuration()
	g.tick = 0
	g.paused = false
}

// inBand reports whether both meters sit within threshold of the center.
func (g *Game) inBand() bool {
	lo, hi := g.cfg.Center-g.cfg.Threshold, g.cfg.Center+g.cfg.Threshold
	for _, m := range g.meters {
		if m < lo || m > hi {
			return false
		}
	}
	return true
}

// onSecond counts the second against the pre-drift meters, then drifts.
func (g *Game) onSecond(s *session.Session) {
	if g.inBand() {
		g.balanced++
	}
	for i := range g.meters {
		r := s.Rand().Float64()
		g.meters[i] = core.ClampF(g.meters[i]+(r-g.cfg.DriftBias)*g.cfg.DriftScale, 0, meterMax)
	}
}

func (g *Game) evaluate(*session.Session) session.Verdict {
	if g.balanced >= g.cfg.RequiredSecs {
		return session.Verdict{Won: true, Reason: ReasonBalanced}
	}
	return session.Verdict{Reason: ReasonNotBalanced}
}

// push raises meter i and pulls the other one down.
func (g *Game) push(i int) {
	g.meters[i] = core.ClampF(g.meters[i]+g.cfg.Push, 0, meterMax)
	g.meters[1-i] = core.ClampF(g.meters[1-i]-g.cfg.Pull, 0, meterMax)
	g.sess.CountMove()
	g.sess.Score(session.CategoryCorrect)
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

	switch {
	case in.Has(core.ActionZone1) || in.Has(core.ActionLeft):
		g.push(0)
	case in.Has(core.ActionZone2) || in.Has(core.ActionRight):
		g.push(1)
	}

	g.sess.Advance(g.dt)
	return core.StepResult{State: g.State()}
}

// Abort abandons the attempt.
func (g *Game) Abort() { g.sess.Abort() }

// State returns the current state.
func (g *Game) State() core.GameState {
	st := g.sess.State()
	st.Paused = g.paused
	return st
}

// Render draws both meters with the calm band marked.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Balance  Time: %2d  Balanced: %d/%ds  XP: %d",
		g.sess.TimeRemaining(), g.balanced, g.cfg.RequiredSecs, g.sess.XP()), core.ColorPink)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	barW := core.Max(dst.Width()-24, 10)
	lo := int((g.cfg.Center - g.cfg.Threshold) / meterMax * float64(barW))
	hi := int((g.cfg.Center + g.cfg.Threshold) / meterMax * float64(barW))
	for i, m := range g.meters {
		y := 5 + i*5
		dst.DrawTextColored(2, y, fmt.Sprintf("%d %-8s", i+1, g.cfg.Labels[i]), core.ColorWhite)

		fill := int(m / meterMax * float64(barW))
		color := core.ColorGreen
		if m < g.cfg.Center-g.cfg.Threshold || m > g.cfg.Center+g.cfg.Threshold {
			color = core.ColorRed
		}
		for x := 0; x < barW; x++ {
			r, c := '░', core.ColorGray
			if x < fill {
				r, c = '█', color
			}
			dst.SetColored(14+x, y, r, c)
		}
		dst.SetColored(14+lo, y+1, '^', core.ColorYellow)
		dst.SetColored(14+hi, y+1, '^', core.ColorYellow)
		dst.DrawText(15+barW, y, fmt.Sprintf("%3.0f", m))
	}

	status, color := "Out of balance", core.ColorRed
	if g.inBand() {
		status, color = "Calm", core.ColorGreen
	}
	dst.DrawTextCenteredColored(16, status, color)

	switch {
	case g.sess.Phase() == core.PhaseNotStarted:
		dst.DrawOverlay(core.ColorPink, "Balance", "Keep anime and drama in harmony.",
			"1 or Left feeds anime, 2 or Right feeds drama.", "Press Enter to start")
	case g.paused:
		dst.DrawOverlay(core.ColorYellow, "Paused", "Press P to continue")
	}
}
