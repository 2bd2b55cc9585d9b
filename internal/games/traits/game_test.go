package traits

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/match"
)

var testCfg = core.RuntimeConfig{Seed: 99, ScreenW: 80, ScreenH: 24, TickRate: 20}

func newStarted(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultLevels().Traits)
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

func idle(g *Game, ticks int) {
	for range ticks {
		press(g)
	}
}

func zoneIndex(g *Game, zone string) int {
	for i, z := range g.cfg.Zones {
		if z == zone {
			return i
		}
	}
	return -1
}

var zoneKeys = []core.Action{core.ActionZone1, core.ActionZone2, core.ActionZone3}

func TestDeterminism(t *testing.T) {
	g1 := New(config.DefaultLevels().Traits)
	g2 := New(config.DefaultLevels().Traits)
	g1.Reset(testCfg)
	g2.Reset(testCfg)

	for i := range 200 {
		in := core.NewInputFrame()
		switch i % 6 {
		case 0:
			in.Set(core.ActionConfirm)
		case 1:
			in.Set(core.ActionSelect)
		case 2:
			in.Set(zoneKeys[i%3])
		case 4:
			in.Set(core.ActionDown)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSortingEverythingCompletes(t *testing.T) {
	g := newStarted(t)

	for range len(g.cfg.Traits) {
		left := g.unsorted()
		if len(left) == 0 {
			t.Fatal("ran out of traits early")
		}
		g.cursor = 0
		press(g, core.ActionSelect)
		it, _ := g.engine.Item(left[0])
		press(g, zoneKeys[zoneIndex(g, it.Key)])
		idle(g, 10) // feedback is 400ms
	}

	st := g.State()
	if st.Phase != core.PhaseComplete {
		t.Fatalf("phase = %v, expected complete", st.Phase)
	}
	if got, want := st.Outcome.EarnedXP(), 19*15; got != want {
		t.Errorf("earned XP = %d, expected %d", got, want)
	}
	if st.Outcome.Accuracy != 100 {
		t.Errorf("accuracy = %d, expected 100", st.Outcome.Accuracy)
	}
}

func TestWrongZonePenalizesAndKeepsTrait(t *testing.T) {
	g := newStarted(t)

	id := g.unsorted()[0]
	it, _ := g.engine.Item(id)
	wrong := (zoneIndex(g, it.Key) + 1) % len(g.cfg.Zones)

	press(g, core.ActionSelect)
	press(g, zoneKeys[wrong])

	if g.sess.XP() != -10 {
		t.Errorf("XP = %d, expected -10", g.sess.XP())
	}
	if g.State().Phase != core.PhaseResolving {
		t.Errorf("phase = %v, expected resolving during feedback", g.State().Phase)
	}
	if g.feedback == "" || g.good {
		t.Errorf("feedback = %q (good=%v), expected a miss message", g.feedback, g.good)
	}

	idle(g, 10)
	if g.feedback != "" {
		t.Error("feedback should clear once the lock is released")
	}
	if g.unsorted()[0] != id {
		t.Error("missorted trait should stay in the list")
	}
	if got, _ := g.engine.Item(id); got.State != match.Hidden {
		t.Errorf("trait state = %v, expected hidden", got.State)
	}
}

func TestDropWithoutHeldTraitIgnored(t *testing.T) {
	g := newStarted(t)

	press(g, core.ActionZone1)
	if g.sess.Moves() != 0 || g.sess.XP() != 0 {
		t.Errorf("moves/XP = %d/%d, expected 0/0", g.sess.Moves(), g.sess.XP())
	}
}

func TestPickingAnotherTraitReplacesHeld(t *testing.T) {
	g := newStarted(t)
	left := g.unsorted()

	press(g, core.ActionSelect)
	press(g, core.ActionDown)
	press(g, core.ActionSelect)

	if got := g.engine.Pending(); len(got) != 1 || got[0] != left[1] {
		t.Errorf("pending = %v, expected [%d]", got, left[1])
	}
}

func TestConfirmDropsIntoHighlightedZone(t *testing.T) {
	g := newStarted(t)

	it, _ := g.engine.Item(g.unsorted()[0])
	press(g, core.ActionSelect)
	for range zoneIndex(g, it.Key) {
		press(g, core.ActionRight)
	}
	press(g, core.ActionConfirm)

	if g.engine.Matched() != 1 {
		t.Errorf("matched = %d, expected 1", g.engine.Matched())
	}
}
