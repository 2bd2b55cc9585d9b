// Package wordhunt implements level 7: find every word hidden in the grid.
package wordhunt

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/session"
	"github.com/vovakirdan/love-no-jutsu/internal/wordsearch"
)

const (
	levelNumber = 7
	flashFor    = 800 * time.Millisecond
)

// ReasonAllFound is the completion message.
const ReasonAllFound = "all words found"

// Game implements the word search level.
type Game struct {
	cfg    config.WordHuntConfig
	logger *log.Logger

	sess    *session.Session
	puzzle  *wordsearch.Puzzle
	special map[string]bool
	cursor  wordsearch.Cell

	flash     string
	flashGood bool
	flashLeft time.Duration

	dt     time.Duration
	tick   uint64
	paused bool
}

// New creates the level from its table. A nil logger discards.
func New(cfg config.WordHuntConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

func init() {
	registry.Register("level-7", func(d registry.Deps) registry.Game {
		return New(d.Levels.WordHunt, d.Logger)
	})
}

// ID returns the route of this level.
func (g *Game) ID() string { return "level-7" }

// Title returns the display name.
func (g *Game) Title() string { return "Word Hunt" }

// Level returns the campaign position.
func (g *Game) Level() int { return levelNumber }

// Reset generates a new grid.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	grid, ok := wordsearch.NewGenerator(cfg.Seed, g.logger).Generate(g.cfg.Words)
	words := g.cfg.Words
	if !ok {
		// Only words the fallback grid happens to contain can be found.
		words = slices.DeleteFunc(slices.Clone(words), func(w string) bool {
			_, found := grid.Locate(w)
			return !found
		})
		g.logger.Warn("word hunt playing a degraded grid", "findable", len(words), "requested", len(g.cfg.Words))
	}
	g.puzzle = wordsearch.NewPuzzle(grid, words)

	g.special = make(map[string]bool, len(g.cfg.SpecialWords))
	for _, w := range g.cfg.SpecialWords {
		g.special[wordsearch.Normalize(w)] = true
	}

	g.sess = session.New(session.Config{
		XP: session.XPRule{
			Correct:    g.cfg.XP.Correct,
			Incorrect:  g.cfg.XP.Incorrect,
			Completion: g.cfg.XP.Completion,
		},
	}, cfg.Seed)
	g.cursor = wordsearch.Cell{}
	g.flash = ""
	g.flashLeft = 0
	g.dt = cfg.TickDuration()
	g.tick = 0
	g.paused = false
}

// wordXP returns the reward for finding word.
func (g *Game) wordXP(word string) int {
	if g.special[word] {
		return g.cfg.XPSpecial
	}
	return g.cfg.XPPerWord
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

	size := g.puzzle.Grid().Size
	dx, dy := in.Direction()
	if size > 0 {
		g.cursor.Col = core.Clamp(g.cursor.Col+dx, 0, size-1)
		g.cursor.Row = core.Clamp(g.cursor.Row+dy, 0, size-1)
	}

	if in.Has(core.ActionSelect) {
		g.mark()
	}
	if in.Has(core.ActionConfirm) {
		g.resolve()
	}

	if g.flashLeft > 0 {
		g.flashLeft -= g.dt
		if g.flashLeft <= 0 {
			g.flash = ""
		}
	}

	g.sess.Advance(g.dt)
	if g.puzzle.Complete() {
		g.sess.Complete(ReasonAllFound)
	}
	return core.StepResult{State: g.State()}
}

// mark adds the cursor cell to the selection, starting a new run when it
// does not continue the current one.
func (g *Game) mark() {
	sel := g.puzzle.Selection()
	if len(sel) > 0 && sel[len(sel)-1] == g.cursor {
		return
	}
	if !g.puzzle.Extend(g.cursor) {
		g.puzzle.Begin(g.cursor)
	}
}

// resolve checks the selection against the word list.
func (g *Game) resolve() {
	res, word := g.puzzle.End()
	switch res {
	case wordsearch.ResolutionFound:
		xp := g.wordXP(word)
		g.sess.CountMove()
		g.sess.Score(session.CategoryCorrect)
		g.sess.Award(xp)
		g.setFlash(fmt.Sprintf("%s! +%d XP", word, xp), true)
	case wordsearch.ResolutionAlreadyFound:
		g.setFlash(word+" was already found", false)
	case wordsearch.ResolutionInvalid:
		g.sess.CountMove()
		g.sess.Score(session.CategoryIncorrect)
		g.setFlash(word+" is not on the list", false)
	}
}

func (g *Game) setFlash(msg string, good bool) {
	g.flash, g.flashGood, g.flashLeft = msg, good, flashFor
}

// Abort abandons the attempt.
func (g *Game) Abort() { g.sess.Abort() }

// State returns the current state.
func (g *Game) State() core.GameState {
	st := g.sess.State()
	st.Paused = g.paused
	return st
}

// Render draws the letter grid and the word list.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	words := g.puzzle.Words()
	dst.DrawTextColored(1, 0, fmt.Sprintf("Word Hunt  Found: %d/%d  XP: %d",
		len(g.puzzle.Found()), len(words), g.sess.XP()), core.ColorPink)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	grid := g.puzzle.Grid()
	sel := g.puzzle.Selection()
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cell := wordsearch.Cell{Row: r, Col: c}
			color := core.ColorDefault
			switch {
			case cell == g.cursor:
				color = core.ColorPink
			case slices.Contains(sel, cell):
				color = core.ColorYellow
			case g.puzzle.CellFound(cell):
				color = core.ColorGreen
			}
			dst.SetColored(2+c*2, 3+r, grid.At(cell), color)
		}
	}

	x := 4 + grid.Size*2
	for i, w := range words {
		color, label := core.ColorGray, w
		if g.special[w] {
			label += " ♥"
		}
		if g.puzzle.IsFound(w) {
			color = core.ColorGreen
		}
		dst.DrawTextColored(x, 3+i, label, color)
	}

	if g.flash != "" {
		color := core.ColorRed
		if g.flashGood {
			color = core.ColorGreen
		}
		dst.DrawTextColored(2, 4+grid.Size, g.flash, color)
	}

	switch {
	case g.sess.Phase() == core.PhaseNotStarted:
		dst.DrawOverlay(core.ColorPink, "Word Hunt", "Every word is a piece of us.",
			"Space marks letters, Enter checks the word.", "Press Enter to start")
	case g.paused:
		dst.DrawOverlay(core.ColorYellow, "Paused", "Press P to continue")
	}
}
