package puzzle

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
)

var testCfg = core.RuntimeConfig{Seed: 31, ScreenW: 80, ScreenH: 24, TickRate: 20}

func newStarted(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultLevels().Puzzle)
	g.Reset(testCfg)
	press(g, core.ActionConfirm)
	if g.State().Phase != core.PhaseActive {
		t.Fatalf("phase = %v, expected active", g.State().Phase)
	}
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// solve swaps every misplaced tile of board bi home, one swap at a time.
func solve(g *Game, bi int) int {
	swaps := 0
	for {
		b := g.boards[bi]
		wrong := b.Misplaced()
		if len(wrong) == 0 {
			return swaps
		}
		p := wrong[0]
		q := slices.Index(b.Tiles, p)
		g.pick(bi, p)
		g.pick(bi, q)
		swaps++
	}
}

func TestNewBoardNeverSolved(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 200 {
		b := NewBoard("t", "c", "AB", 2, rng)
		if b.Solved() {
			t.Fatal("shuffled board must not start solved")
		}
		if len(b.Art) != 4 {
			t.Fatalf("art length = %d, expected padding to 4", len(b.Art))
		}
	}
}

func TestBoardGlyph(t *testing.T) {
	b := Board{Size: 2, Art: []rune("LOVE"), Tiles: []int{3, 2, 1, 0}}
	got := string([]rune{b.Glyph(0), b.Glyph(1), b.Glyph(2), b.Glyph(3)})
	if got != "EVOL" {
		t.Errorf("glyphs = %q, expected %q", got, "EVOL")
	}
	b.Swap(0, 3)
	b.Swap(1, 2)
	if !b.Solved() {
		t.Error("board should be solved after swapping home")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New(config.DefaultLevels().Puzzle)
	g2 := New(config.DefaultLevels().Puzzle)
	g1.Reset(testCfg)
	g2.Reset(testCfg)

	for i := range 150 {
		in := core.NewInputFrame()
		switch i % 5 {
		case 0:
			in.Set(core.ActionConfirm)
		case 1:
			in.Set(core.ActionRight)
		case 3:
			in.Set(core.ActionDown)
		case 4:
			in.Set(core.ActionSelect)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSolvingAllPicturesCompletes(t *testing.T) {
	g := newStarted(t)

	swaps := 0
	for bi := range g.boards {
		swaps += solve(g, bi)
	}
	press(g)

	st := g.State()
	if st.Phase != core.PhaseComplete {
		t.Fatalf("phase = %v, expected complete", st.Phase)
	}
	if st.Outcome.EarnedXP() != swaps*5 {
		t.Errorf("earned XP = %d, expected %d", st.Outcome.EarnedXP(), swaps*5)
	}
	if st.Outcome.Moves != swaps {
		t.Errorf("moves = %d, expected %d", st.Outcome.Moves, swaps)
	}
}

func TestSelectionRules(t *testing.T) {
	g := newStarted(t)

	g.pick(0, 0)
	g.pick(0, 0)
	if g.pending.Len() != 0 {
		t.Error("picking the same piece twice should deselect it")
	}

	g.pick(0, 1)
	g.pick(1, 2)
	if ids := g.pending.IDs(); len(ids) != 1 || ids[0] != g.pieceID(1, 2) {
		t.Errorf("pending = %v, a piece of another picture should restart the selection", ids)
	}

	before := slices.Clone(g.boards[1].Tiles)
	g.pick(1, 3)
	if g.pending.Len() != 0 {
		t.Error("selection should clear after a swap")
	}
	if before[2] != g.boards[1].Tiles[3] || before[3] != g.boards[1].Tiles[2] {
		t.Error("pieces 2 and 3 should have swapped")
	}
	if g.sess.XP() != 5 {
		t.Errorf("XP = %d, expected 5", g.sess.XP())
	}
}

func TestSolvedBoardIsLocked(t *testing.T) {
	g := newStarted(t)
	solve(g, 0)
	xp := g.sess.XP()

	g.pick(0, 0)
	g.pick(0, 1)
	if !g.boards[0].Solved() || g.sess.XP() != xp {
		t.Error("a restored picture should ignore further picks")
	}
}

func TestCursorCrossesBoards(t *testing.T) {
	g := newStarted(t)

	for range 5 {
		press(g, core.ActionRight)
	}
	if g.board != 1 || g.col != 1 {
		t.Errorf("cursor = board %d col %d, expected board 1 col 1", g.board, g.col)
	}
	for range 20 {
		press(g, core.ActionRight)
	}
	if g.board != 2 || g.col != 3 {
		t.Errorf("cursor = board %d col %d, expected the last column", g.board, g.col)
	}
}
