// Package traits implements level 3: sort personality traits into the
// him, her and both zones.
package traits

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/match"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/session"
)

const (
	levelNumber = 3
	targetBase  = 1000 // Drop target IDs start here
)

// ReasonAllSorted is the completion message.
const ReasonAllSorted = "all traits sorted"

// Game implements the sorting level.
type Game struct {
	cfg config.TraitsConfig

	sess     *session.Session
	engine   *match.Engine
	order    []int // Trait IDs in display order
	cursor   int   // Index into the unsorted traits
	zone     int   // Highlighted drop zone
	feedback string
	good     bool
	dt       time.Duration
	tick     uint64
	paused   bool
}

// New creates the level from its table.
func New(cfg config.TraitsConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("level-3", func(d registry.Deps) registry.Game {
		return New(d.Levels.Traits)
	})
}

// ID returns the route of this level.
func (g *Game) ID() string { return "level-3" }

// Title returns the display name.
func (g *Game) Title() string { return "Traits" }

// Level returns the campaign position.
func (g *Game) Level() int { return levelNumber }

// Reset shuffles the traits and clears the zones.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	items := make([]match.Item, 0, len(g.cfg.Traits)+len(g.cfg.Zones))
	g.order = make([]int, 0, len(g.cfg.Traits))
	for i, tr := range g.cfg.Traits {
		items = append(items, match.Item{ID: i + 1, Key: tr.Zone, Label: tr.Name})
		g.order = append(g.order, i+1)
	}
	rng.Shuffle(len(g.order), func(i, j int) { g.order[i], g.order[j] = g.order[j], g.order[i] })
	for i, z := range g.cfg.Zones {
		items = append(items, match.Item{ID: targetBase + i, Key: z, Label: z, Target: true})
	}

	feedback := config.Ms(g.cfg.FeedbackMS)
	g.engine = match.New(match.ModeSort, items, match.Delays{Match: feedback, Mismatch: feedback})
	g.sess = session.New(session.Config{
		XP: session.XPRule{
			Correct:    g.cfg.XP.Correct,
			Incorrect:  g.cfg.XP.Incorrect,
			Completion: g.cfg.XP.Completion,
		},
	}, cfg.Seed)
	g.cursor = 0
	g.zone = 0
	g.feedback = ""
	g.dt = cfg.TickDuration()
	g.tick = 0
	g.paused = false
}

// unsorted returns the trait IDs still waiting for a zone.
func (g *Game) unsorted() []int {
	var ids []int
	for _, id := range g.order {
		if it, _ := g.engine.Item(id); it.State != match.Matched {
			ids = append(ids, id)
		}
	}
	return ids
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

	g.handleInput(in)

	if g.engine.Advance(g.dt) == match.ResultReleased {
		g.feedback = ""
	}
	g.sess.SetResolving(g.engine.Checking())
	g.sess.Advance(g.dt)

	if g.engine.Complete() && !g.engine.Checking() {
		g.sess.Complete(ReasonAllSorted)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	left := g.unsorted()
	dx, dy := in.Direction()
	if len(left) > 0 {
		g.cursor = core.Clamp(g.cursor+dy, 0, len(left)-1)
	}
	if len(g.cfg.Zones) > 0 {
		g.zone = core.Clamp(g.zone+dx, 0, len(g.cfg.Zones)-1)
	}

	if in.Has(core.ActionSelect) && g.cursor < len(left) {
		g.engine.Select(left[g.cursor])
	}

	zoneKeys := []core.Action{core.ActionZone1, core.ActionZone2, core.ActionZone3}
	for i, a := range zoneKeys {
		if in.Has(a) && i < len(g.cfg.Zones) {
			g.zone = i
			g.drop(i)
			return
		}
	}
	if in.Has(core.ActionConfirm) {
		g.drop(g.zone)
	}
}

// drop places the held trait into zone i.
func (g *Game) drop(i int) {
	held := g.engine.Pending()
	if len(held) != 1 {
		return
	}
	it, _ := g.engine.Item(held[0])

	switch g.engine.Select(targetBase + i) {
	case match.ResultMatch:
		g.sess.CountMove()
		g.sess.Score(session.CategoryCorrect)
		g.feedback, g.good = fmt.Sprintf("%q belongs to %s", it.Label, it.Key), true
		g.cursor = core.Clamp(g.cursor, 0, core.Max(len(g.unsorted())-1, 0))
	case match.ResultMismatch:
		g.sess.CountMove()
		g.sess.Score(session.CategoryIncorrect)
		g.feedback, g.good = fmt.Sprintf("%q is not %s", it.Label, g.cfg.Zones[i]), false
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

// Render draws the trait list and the zones.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Traits  Sorted: %d/%d  Mistakes: %d  XP: %d",
		g.engine.Matched(), g.engine.Total(), g.sess.Incorrect(), g.sess.XP()), core.ColorPink)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	pending := g.engine.Pending()
	for i, id := range g.unsorted() {
		it, _ := g.engine.Item(id)
		prefix, color := "  ", core.ColorDefault
		if len(pending) > 0 && pending[0] == id {
			prefix, color = "* ", core.ColorYellow
		}
		if i == g.cursor {
			prefix = "> "
			if color == core.ColorDefault {
				color = core.ColorPink
			}
		}
		dst.DrawTextColored(1, 2+i, prefix+it.Label, color)
	}

	zoneW := 16
	x0 := dst.Width() - len(g.cfg.Zones)*zoneW
	placed := make(map[string][]string)
	for _, it := range g.engine.Items() {
		if !it.Target && it.State == match.Matched {
			placed[it.Key] = append(placed[it.Key], it.Label)
		}
	}
	for i, z := range g.cfg.Zones {
		r := core.NewRect(x0+i*zoneW, 2, zoneW-1, dst.Height()-5)
		color := core.ColorGray
		if i == g.zone {
			color = core.ColorPink
		}
		dst.DrawBoxColored(r, color)
		dst.DrawTextColored(r.X+2, r.Y, fmt.Sprintf(" %d %s ", i+1, strings.ToUpper(z)), color)
		for j, name := range placed[z] {
			if j >= r.H-2 {
				break
			}
			label := []rune(name)
			if len(label) > r.W-2 {
				label = label[:r.W-2]
			}
			dst.DrawTextColored(r.X+1, r.Y+1+j, string(label), core.ColorGreen)
		}
	}

	if g.feedback != "" {
		color := core.ColorRed
		if g.good {
			color = core.ColorGreen
		}
		dst.DrawTextCenteredColored(dst.Height()-2, g.feedback, color)
	}

	switch {
	case g.sess.Phase() == core.PhaseNotStarted:
		dst.DrawOverlay(core.ColorPink, "Traits", "Who is who? Sort every trait.",
			"Up/Down choose, Space picks, 1/2/3 drops.", "Press Enter to start")
	case g.paused:
		dst.DrawOverlay(core.ColorYellow, "Paused", "Press P to continue")
	}
}
