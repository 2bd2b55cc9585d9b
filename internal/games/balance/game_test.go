package balance

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
)

var testCfg = core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24, TickRate: 20}

func newStarted(t *testing.T, cfg config.BalanceConfig) *Game {
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
	cfg := config.DefaultLevels().Balance
	g1, g2 := New(cfg), New(cfg)
	g1.Reset(testCfg)
	g2.Reset(testCfg)

	for i := range 300 {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionConfirm)
		case i%11 == 0:
			in.Set(core.ActionZone1)
		case i%7 == 0:
			in.Set(core.ActionZone2)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPushMovesBothMeters(t *testing.T) {
	g := newStarted(t, config.DefaultLevels().Balance)

	press(g, core.ActionZone1)
	if g.meters != [2]float64{40, 67} {
		t.Errorf("meters = %v, expected [40 67]", g.meters)
	}
	press(g, core.ActionRight)
	if g.meters != [2]float64{32, 82} {
		t.Errorf("meters = %v, expected [32 82]", g.meters)
	}
	if g.sess.XP() != 4 {
		t.Errorf("XP = %d, expected 2 per push", g.sess.XP())
	}
}

func TestMetersClamp(t *testing.T) {
	g := newStarted(t, config.DefaultLevels().Balance)

	for range 10 {
		press(g, core.ActionZone1)
	}
	if g.meters[0] != 100 || g.meters[1] != 0 {
		t.Errorf("meters = %v, expected [100 0]", g.meters)
	}
}

func TestTimeoutVerdict(t *testing.T) {
	tests := []struct {
		name   string
		start  [2]float64
		phase  core.Phase
		reason string
	}{
		{"held in band", [2]float64{50, 50}, core.PhaseComplete, ReasonBalanced},
		{"never in band", [2]float64{0, 100}, core.PhaseFailed, ReasonNotBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultLevels().Balance
			cfg.Start = tt.start
			cfg.DriftScale = 0
			g := newStarted(t, cfg)

			idle(g, cfg.DurationSecs*20)
			st := g.State()
			if st.Phase != tt.phase {
				t.Fatalf("phase = %v, expected %v", st.Phase, tt.phase)
			}
			if st.Outcome.Reason != tt.reason {
				t.Errorf("reason = %q, expected %q", st.Outcome.Reason, tt.reason)
			}
		})
	}
}

func TestBalancedSecondCountedBeforeDrift(t *testing.T) {
	cfg := config.DefaultLevels().Balance
	cfg.Start = [2]float64{80, 50}
	cfg.DriftBias = -1 // Every drift pushes upward by at least DriftScale
	cfg.DriftScale = 5
	g := newStarted(t, cfg)

	idle(g, 20)
	if g.balanced != 1 {
		t.Fatalf("balanced = %d after the first second, expected 1", g.balanced)
	}
	if g.meters[0] <= 80 {
		t.Fatalf("meter = %v, expected drift above the band", g.meters[0])
	}
	idle(g, 20)
	if g.balanced != 1 {
		t.Errorf("balanced = %d, the drifted meter should no longer count", g.balanced)
	}
}
