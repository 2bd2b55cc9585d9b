// Package puzzle implements level 5: restore three scrambled pictures by
// swapping two pieces at a time.
package puzzle

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
	levelNumber = 5
	tileW       = 3
	boardGap    = 4
)

// ReasonAllRestored is the completion message.
const ReasonAllRestored = "all pictures restored"

// Game implements the swap puzzle level.
type Game struct {
	cfg config.PuzzleConfig

	sess    *session.Session
	boards  []Board
	pending match.Buffer // Global piece IDs: board*size*size + pos
	board   int
	row     int
	col     int
	dt      time.Duration
	tick    uint64
	paused  bool
}

// New creates the level from its table.
func New(cfg config.PuzzleConfig) *Game {
	if cfg.Size <= 0 {
		cfg.Size = 4
	}
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("level-5", func(d registry.Deps) registry.Game {
		return New(d.Levels.Puzzle)
	})
}

// ID returns the route of this level.
func (g *Game) ID() string { return "level-5" }

// Title returns the display name.
func (g *Game) Title() string { return "Puzzle" }

// Level returns the campaign position.
func (g *Game) Level() int { return levelNumber }

// Reset scrambles every picture.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.boards = g.boards[:0]
	for _, p := range g.cfg.Pictures {
		g.boards = append(g.boards, NewBoard(p.Title, p.Caption, p.Tiles, g.cfg.Size, rng))
	}
	g.sess = session.New(session.Config{
		XP: session.XPRule{
			Correct:    g.cfg.XP.Correct,
			Completion: g.cfg.XP.Completion,
		},
	}, cfg.Seed)
	g.pending.Clear()
	g.board, g.row, g.col = 0, 0, 0
	g.dt = cfg.TickDuration()
	g.tick = 0
	g.paused = false
}

func (g *Game) cells() int { return g.cfg.Size * g.cfg.Size }

// pieceID encodes a board position as one selection ID.
func (g *Game) pieceID(board, pos int) int { return board*g.cells() + pos }

func (g *Game) splitID(id int) (board, pos int) { return id / g.cells(), id % g.cells() }

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

	g.moveCursor(in)
	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		g.pick(g.board, g.row*g.cfg.Size+g.col)
	}

	g.sess.Advance(g.dt)
	if g.allSolved() {
		g.sess.Complete(ReasonAllRestored)
	}
	return core.StepResult{State: g.State()}
}

// moveCursor walks across boards as if they were one wide grid.
func (g *Game) moveCursor(in core.InputFrame) {
	dx, dy := in.Direction()
	size := g.cfg.Size
	global := core.Clamp(g.board*size+g.col+dx, 0, len(g.boards)*size-1)
	g.board, g.col = global/size, global%size
	g.row = core.Clamp(g.row+dy, 0, size-1)
}

// pick adds a piece to the selection and swaps once two are held.
func (g *Game) pick(board, pos int) {
	if board >= len(g.boards) || g.boards[board].Solved() {
		return
	}
	id := g.pieceID(board, pos)
	if g.pending.Contains(id) {
		g.pending.Clear()
		return
	}
	if ids := g.pending.IDs(); len(ids) == 1 {
		if b, _ := g.splitID(ids[0]); b != board {
			g.pending.Clear()
		}
	}
	g.pending.Push(id)
	if !g.pending.Full() {
		return
	}

	ids := g.pending.IDs()
	g.pending.Clear()
	_, p := g.splitID(ids[0])
	_, q := g.splitID(ids[1])
	g.boards[board].Swap(p, q)
	g.sess.CountMove()
	g.sess.Score(session.CategoryCorrect)
}

func (g *Game) allSolved() bool {
	if len(g.boards) == 0 {
		return false
	}
	for _, b := range g.boards {
		if !b.Solved() {
			return false
		}
	}
	return true
}

// Abort abandons the attempt.
func (g *Game) Abort() { g.sess.Abort() }

// State returns the current state.
func (g *Game) State() core.GameState {
	st := g.sess.State()
	st.Paused = g.paused
	return st
}

// Render draws the boards side by side.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	solved := 0
	for _, b := range g.boards {
		if b.Solved() {
			solved++
		}
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Puzzle  Restored: %d/%d  Swaps: %d  XP: %d",
		solved, len(g.boards), g.sess.Moves(), g.sess.XP()), core.ColorPink)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	size := g.cfg.Size
	boardW := size*tileW + 2
	total := len(g.boards)*boardW + (len(g.boards)-1)*boardGap
	x0 := (dst.Width() - total) / 2
	for bi, b := range g.boards {
		r := core.NewRect(x0+bi*(boardW+boardGap), 4, boardW, size+2)
		frame := core.ColorGray
		if b.Solved() {
			frame = core.ColorGreen
		}
		dst.DrawBoxColored(r, frame)
		dst.DrawTextColored(r.X, r.Y-1, truncate(b.Title, boardW), core.ColorWhite)

		for pos := range b.Tiles {
			x := r.X + 1 + (pos%size)*tileW
			y := r.Y + 1 + pos/size
			color := core.ColorDefault
			switch {
			case g.pending.Contains(g.pieceID(bi, pos)):
				color = core.ColorYellow
			case b.Solved():
				color = core.ColorGreen
			}
			open, shut := ' ', ' '
			if bi == g.board && pos == g.row*size+g.col {
				open, shut = '[', ']'
				if color == core.ColorDefault {
					color = core.ColorPink
				}
			}
			dst.SetColored(x, y, open, color)
			dst.SetColored(x+1, y, b.Glyph(pos), color)
			dst.SetColored(x+2, y, shut, color)
		}
		if b.Solved() {
			dst.DrawTextColored(r.X, r.Bottom(), truncate(b.Caption, boardW), core.ColorGreen)
		}
	}

	switch {
	case g.sess.Phase() == core.PhaseNotStarted:
		dst.DrawOverlay(core.ColorPink, "Puzzle", "Our moments got scrambled.",
			"Space selects two pieces of one picture to swap them.", "Press Enter to start")
	case g.paused:
		dst.DrawOverlay(core.ColorYellow, "Paused", "Press P to continue")
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
