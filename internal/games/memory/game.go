// Package memory implements level 1: flip cards two at a time and match
// every pair.
package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/match"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/session"
)

const (
	levelNumber = 1
	columns     = 5
	cardWidth   = 12
	cardHeight  = 3
)

// ReasonAllMatched is the completion message.
const ReasonAllMatched = "all pairs matched"

// Game implements the memory level.
type Game struct {
	cfg config.MemoryConfig

	sess   *session.Session
	engine *match.Engine
	cards  []match.Item // Deck order, used for layout
	cursor int
	dt     time.Duration
	tick   uint64
	paused bool

	screenW int
	screenH int
}

// New creates the memory level from its table.
func New(cfg config.MemoryConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("level-1", func(d registry.Deps) registry.Game {
		return New(d.Levels.Memory)
	})
}

// ID returns the route of this level.
func (g *Game) ID() string { return "level-1" }

// Title returns the display name.
func (g *Game) Title() string { return "Memory" }

// Level returns the campaign position.
func (g *Game) Level() int { return levelNumber }

// Reset deals a fresh shuffled deck.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.cards = match.Deck(g.cfg.Pairs, rng)
	g.engine = match.New(match.ModePairs, g.cards, match.Delays{
		Match:    config.Ms(g.cfg.MatchDelayMS),
		Mismatch: config.Ms(g.cfg.MismatchDelayMS),
	})
	g.sess = session.New(session.Config{
		XP: session.XPRule{
			Correct:    g.cfg.XP.Correct,
			Incorrect:  g.cfg.XP.Incorrect,
			Completion: g.cfg.XP.Completion,
		},
	}, cfg.Seed)
	g.cursor = 0
	g.dt = cfg.TickDuration()
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// Step advances the level by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.sess.Phase() == core.PhaseNotStarted {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionSelect) {
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

	g.moveCursor(in)

	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		g.flip(g.cards[g.cursor].ID)
	}

	g.engine.Advance(g.dt)
	g.sess.SetResolving(g.engine.Checking())
	g.sess.Advance(g.dt)

	if g.engine.Complete() && !g.engine.Checking() {
		g.sess.Complete(ReasonAllMatched)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	dx, dy := in.Direction()
	if dx == 0 && dy == 0 {
		return
	}
	rows := (len(g.cards) + columns - 1) / columns
	col := core.Clamp(g.cursor%columns+dx, 0, columns-1)
	row := core.Clamp(g.cursor/columns+dy, 0, rows-1)
	if next := row*columns + col; next < len(g.cards) {
		g.cursor = next
	}
}

// flip selects a card and scores a finished comparison.
func (g *Game) flip(id int) {
	switch g.engine.Select(id) {
	case match.ResultMatch:
		g.sess.CountMove()
		g.sess.Score(session.CategoryCorrect)
	case match.ResultMismatch:
		g.sess.CountMove()
		g.sess.Score(session.CategoryIncorrect)
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

// Render draws the card grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Memory  Pairs: %d/%d  Moves: %d  XP: %d",
		g.engine.Matched(), g.engine.Total(), g.sess.Moves(), g.sess.XP()), core.ColorPink)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	offsetX := (dst.Width() - columns*cardWidth) / 2
	for i, card := range g.cards {
		it, _ := g.engine.Item(card.ID)
		r := core.NewRect(offsetX+(i%columns)*cardWidth, 2+(i/columns)*cardHeight, cardWidth-1, cardHeight)

		color := core.ColorGray
		label := "?"
		switch it.State {
		case match.Selected:
			color, label = core.ColorYellow, it.Label
		case match.Matched:
			color, label = core.ColorGreen, it.Label
		}
		if i == g.cursor {
			color = core.ColorPink
		}
		dst.DrawBoxColored(r, color)
		dst.DrawTextColored(r.X+(r.W-len([]rune(label)))/2, r.Y+1, label, color)
	}

	switch {
	case g.sess.Phase() == core.PhaseNotStarted:
		dst.DrawOverlay(core.ColorPink, "Memory", "Find all the pairs of the things we love.",
			"Arrows move, Space flips.", "Press Enter to start")
	case g.paused:
		dst.DrawOverlay(core.ColorYellow, "Paused", "Press P to continue")
	}
}
