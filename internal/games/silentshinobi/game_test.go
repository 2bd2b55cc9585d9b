package silentshinobi

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/session"
)

// 20 ticks per second keeps every interval an exact number of ticks.
var testCfg = core.RuntimeConfig{Seed: 2024, ScreenW: 80, ScreenH: 24, TickRate: 20}

func newStarted(t *testing.T, cfg config.ShinobiConfig) *Game {
	t.Helper()
	g := New(cfg)
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

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultLevels().SilentShinobi
	g1, g2 := New(cfg), New(cfg)
	g1.Reset(testCfg)
	g2.Reset(testCfg)

	for i := range 400 {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionConfirm)
		case i%9 == 0:
			in.Set(core.ActionSelect)
		case i%13 == 0:
			in.Set(core.ActionLeft)
		case i%17 == 0:
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSpawnInterval(t *testing.T) {
	g := newStarted(t, config.DefaultLevels().SilentShinobi)

	idle(g, 15)
	if n := len(g.sess.Entities()); n != 0 {
		t.Fatalf("entities after 750ms = %d, expected 0", n)
	}
	idle(g, 1)
	if n := len(g.sess.Entities()); n != 1 {
		t.Fatalf("entities after 800ms = %d, expected 1", n)
	}
}

func TestPoolNeverExceedsCap(t *testing.T) {
	cfg := config.DefaultLevels().SilentShinobi
	cfg.FallPerStep = 0.01 // Nothing leaves the field
	g := newStarted(t, cfg)

	for range 20 * 20 {
		press(g)
		if n := len(g.sess.Entities()); n > cfg.MaxItems {
			t.Fatalf("pool size %d exceeds cap %d", n, cfg.MaxItems)
		}
	}
}

func TestTapScoresLowestInLane(t *testing.T) {
	g := newStarted(t, config.DefaultLevels().SilentShinobi)
	idle(g, 40)

	var target session.Entity
	found := false
	for _, e := range g.sess.Entities() {
		if e.Pos.Y >= 0 && (!found || e.Pos.Y > target.Pos.Y) {
			target, found = e, true
		}
	}
	if !found {
		t.Fatal("expected a visible item after two seconds")
	}
	lowest := target
	for _, e := range g.sess.Entities() {
		if int(e.Pos.X) == int(target.Pos.X) && e.Pos.Y >= 0 && e.Pos.Y > lowest.Pos.Y {
			lowest = e
		}
	}

	g.lane = int(lowest.Pos.X)
	press(g, core.ActionSelect)

	for _, e := range g.sess.Entities() {
		if e.ID == lowest.ID {
			t.Fatal("tapped item should leave the pool")
		}
	}
	want := 5
	if lowest.Category == session.CategoryIncorrect {
		want = -10
	}
	if g.sess.XP() != want {
		t.Errorf("XP = %d, expected %d for a %v tap", g.sess.XP(), want, lowest.Category)
	}
	if g.sess.Moves() != 1 {
		t.Errorf("moves = %d, expected 1", g.sess.Moves())
	}
}

func TestTapEmptyLaneDoesNothing(t *testing.T) {
	g := newStarted(t, config.DefaultLevels().SilentShinobi)
	press(g, core.ActionSelect)

	if g.sess.Moves() != 0 || g.sess.XP() != 0 {
		t.Errorf("moves/XP = %d/%d, expected 0/0", g.sess.Moves(), g.sess.XP())
	}
}

func TestTimeoutOutcome(t *testing.T) {
	tests := []struct {
		name       string
		minCorrect int
		phase      core.Phase
	}{
		{"no minimum completes", 0, core.PhaseComplete},
		{"minimum unmet fails", 1, core.PhaseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultLevels().SilentShinobi
			cfg.MinCorrect = tt.minCorrect
			g := newStarted(t, cfg)

			idle(g, cfg.DurationSecs*20)
			st := g.State()
			if st.Phase != tt.phase {
				t.Fatalf("phase = %v, expected %v", st.Phase, tt.phase)
			}
			if st.Outcome == nil || st.Outcome.Seconds != cfg.DurationSecs {
				t.Errorf("outcome = %+v, expected %d seconds", st.Outcome, cfg.DurationSecs)
			}
		})
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newStarted(t, config.DefaultLevels().SilentShinobi)

	press(g, core.ActionPause)
	idle(g, 100)
	if g.sess.TimeRemaining() != 30 {
		t.Errorf("time remaining = %d while paused, expected 30", g.sess.TimeRemaining())
	}
	if !g.State().Paused {
		t.Error("state should report paused")
	}
}
