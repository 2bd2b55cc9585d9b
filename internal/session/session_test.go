package session

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/love-no-jutsu/internal/core"
)

type lineSpawner struct{ category Category }

func (l lineSpawner) Spawn(rng *rand.Rand) Entity {
	return Entity{Pos: core.Vec{X: float64(rng.Intn(100))}, Kind: "icon", Category: l.category}
}

// fall moves entities one unit down and drops them past y=3.
type fall struct{}

func (fall) Move(e *Entity) bool {
	e.Pos.Y++
	return e.Pos.Y < 3
}

func runSeconds(s *Session, seconds int) {
	for i := 0; i < seconds; i++ {
		s.Advance(time.Second)
	}
}

func collectorSession() *Session {
	s := New(Config{
		Duration: 10,
		Band:     Band{Min: 8, Max: 15},
		XP:       XPRule{Correct: 10, PerSecondInBand: 5, Completion: 200},
	}, 1)
	s.Start()
	return s
}

func TestCollectorBand(t *testing.T) {
	tests := []struct {
		name      string
		collected int
		phase     core.Phase
		reason    string
		secondsOK bool
	}{
		{"lower edge wins", 8, core.PhaseComplete, ReasonTimeUp, true},
		{"upper edge wins", 15, core.PhaseComplete, ReasonTimeUp, true},
		{"below band fails at time-out", 7, core.PhaseFailed, ReasonTooFew, true},
		{"above band fails immediately", 16, core.PhaseFailed, ReasonExceeded, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := collectorSession()
			for i := 0; i < tc.collected; i++ {
				s.Score(CategoryCorrect)
			}
			if !tc.secondsOK {
				if s.Phase() != tc.phase {
					t.Fatalf("phase = %s right after collecting, expected %s", s.Phase(), tc.phase)
				}
				if s.TimeRemaining() != 10 {
					t.Errorf("failure should not wait for the clock, remaining = %d", s.TimeRemaining())
				}
			}
			runSeconds(s, 10)
			if s.Phase() != tc.phase || s.Reason() != tc.reason {
				t.Errorf("phase = %s (%q), expected %s (%q)", s.Phase(), s.Reason(), tc.phase, tc.reason)
			}
		})
	}
}

func TestCompletionBonusAndInBandXP(t *testing.T) {
	s := collectorSession()
	for i := 0; i < 8; i++ {
		s.Score(CategoryCorrect)
	}
	runSeconds(s, 10)

	o := s.Outcome()
	if !o.Won || o.CompletionXP != 200 {
		t.Fatalf("outcome = %+v", o)
	}
	// 8 collections at +10 and 10 in-band seconds at +5.
	if got := o.EarnedXP(); got != 80+50+200 {
		t.Errorf("earned = %d, expected 330", got)
	}
	if len(o.XPDeltas) != 18 {
		t.Errorf("ledger length = %d, expected 18", len(o.XPDeltas))
	}
	if o.Seconds != 10 {
		t.Errorf("seconds = %d, expected 10", o.Seconds)
	}
}

func TestNotStartedIgnoresTicks(t *testing.T) {
	s := New(Config{Duration: 5, SpawnInterval: time.Second, Spawner: lineSpawner{}}, 1)
	runSeconds(s, 3)
	if s.TimeRemaining() != 5 || len(s.Entities()) != 0 {
		t.Error("a session that was never started must not tick")
	}
	s.Score(CategoryCorrect)
	if s.Correct() != 0 {
		t.Error("interactions before Start must be ignored")
	}
}

func TestSpawnEvictsOldest(t *testing.T) {
	s := New(Config{
		Duration:      30,
		SpawnInterval: 100 * time.Millisecond,
		MaxEntities:   3,
		Spawner:       lineSpawner{},
	}, 42)
	s.Start()
	s.Advance(500 * time.Millisecond)

	ents := s.Entities()
	ids := make([]int, len(ents))
	for i, e := range ents {
		ids[i] = e.ID
	}
	if !slices.Equal(ids, []int{3, 4, 5}) {
		t.Errorf("ids = %v, expected the newest three [3 4 5]", ids)
	}
	if s.Correct() != 0 || s.Incorrect() != 0 || s.XP() != 0 {
		t.Error("eviction must not score")
	}
}

func TestMotionRemovesSilently(t *testing.T) {
	s := New(Config{
		Duration:      30,
		SpawnInterval: time.Second,
		MotionStep:    50 * time.Millisecond,
		Spawner:       lineSpawner{category: CategoryIncorrect},
		Mover:         fall{},
		XP:            XPRule{Incorrect: -10},
	}, 3)
	s.Start()

	s.Advance(950 * time.Millisecond)
	s.Advance(50 * time.Millisecond)
	if n := len(s.Entities()); n != 1 {
		t.Fatalf("entities = %d after first spawn, expected 1", n)
	}
	// Spawning runs before motion within a tick.
	if y := s.Entities()[0].Pos.Y; y != 1 {
		t.Errorf("y = %v, expected 1", y)
	}

	s.Advance(100 * time.Millisecond)
	if n := len(s.Entities()); n != 0 {
		t.Errorf("entity should have left the field, %d remain", n)
	}
	if s.XP() != 0 || s.Incorrect() != 0 {
		t.Error("leaving the field must not be penalized")
	}
}

func TestResolveAppliesRule(t *testing.T) {
	s := New(Config{
		Duration:      30,
		SpawnInterval: time.Second,
		Spawner:       lineSpawner{category: CategoryIncorrect},
		XP:            XPRule{Correct: 5, Incorrect: -10},
	}, 9)
	s.Start()
	s.Advance(time.Second)

	id := s.Entities()[0].ID
	e, ok := s.Resolve(id)
	if !ok || e.State != EntityResolved {
		t.Fatalf("Resolve(%d) = %+v, %v", id, e, ok)
	}
	if _, ok := s.Resolve(id); ok {
		t.Error("resolving twice must be a no-op")
	}
	if s.Incorrect() != 1 || s.XP() != -10 {
		t.Errorf("incorrect = %d, xp = %d", s.Incorrect(), s.XP())
	}
	if s.Accuracy() != 0 {
		t.Errorf("accuracy = %d, expected 0", s.Accuracy())
	}
}

func TestAbortDiscards(t *testing.T) {
	s := collectorSession()
	s.Score(CategoryCorrect)
	s.Abort()

	if s.Phase() != core.PhaseFailed || s.Outcome().Won {
		t.Fatalf("aborted session phase = %s", s.Phase())
	}
	runSeconds(s, 20)
	s.Score(CategoryCorrect)
	if s.Correct() != 1 || s.TimeRemaining() != 10 {
		t.Error("an aborted session must not change")
	}
}

func TestOnSecondAndCustomEvaluate(t *testing.T) {
	ticks := 0
	s := New(Config{
		Duration: 3,
		OnSecond: func(s *Session) { ticks++ },
		Evaluate: func(s *Session) Verdict {
			return Verdict{Reason: "not balanced long enough"}
		},
	}, 1)
	s.Start()
	runSeconds(s, 5)

	if ticks != 3 {
		t.Errorf("OnSecond ran %d times, expected 3", ticks)
	}
	if s.Phase() != core.PhaseFailed || s.Reason() != "not balanced long enough" {
		t.Errorf("phase = %s (%q)", s.Phase(), s.Reason())
	}
}

func TestUntimedSessionNeverTimesOut(t *testing.T) {
	s := New(Config{}, 1)
	s.Start()
	runSeconds(s, 100)
	if s.Phase() != core.PhaseActive {
		t.Fatalf("untimed session phase = %s", s.Phase())
	}
	s.Complete("all matched")
	if st := s.State(); !st.Over() || st.Outcome == nil || !st.Outcome.Won {
		t.Errorf("state = %+v", st)
	}
}

func TestResolvingSubPhase(t *testing.T) {
	s := New(Config{}, 1)
	s.SetResolving(true)
	if s.Phase() != core.PhaseNotStarted {
		t.Error("Resolving requires an active session")
	}
	s.Start()
	s.SetResolving(true)
	if s.Phase() != core.PhaseResolving || !s.Active() {
		t.Errorf("phase = %s", s.Phase())
	}
	s.SetResolving(false)
	if s.Phase() != core.PhaseActive {
		t.Errorf("phase = %s", s.Phase())
	}
}

func TestDeterministicSpawns(t *testing.T) {
	run := func() []Entity {
		s := New(Config{Duration: 10, SpawnInterval: 200 * time.Millisecond, Spawner: lineSpawner{}}, 77)
		s.Start()
		s.Advance(2 * time.Second)
		return s.Entities()
	}
	if a, b := run(), run(); !slices.Equal(a, b) {
		t.Error("same seed should produce the same entities")
	}
}

func TestPoolPick(t *testing.T) {
	pool := Pool{
		{Kind: "drama", Category: CategoryCorrect, Weight: 3},
		{Kind: "silence", Category: CategoryIncorrect, Weight: 2},
		{Kind: "never", Weight: 0},
	}
	rng := rand.New(rand.NewSource(5))
	counts := map[string]int{}
	for i := 0; i < 5000; i++ {
		counts[pool.Pick(rng).Kind]++
	}
	if counts["never"] != 0 {
		t.Error("zero-weight option was drawn")
	}
	share := float64(counts["drama"]) / 5000
	if share < 0.55 || share > 0.65 {
		t.Errorf("drama share = %.2f, expected about 0.60", share)
	}
	if (Pool{}).Pick(rng).Kind != "" {
		t.Error("empty pool should yield the zero option")
	}
}

func TestBandContains(t *testing.T) {
	b := Band{Min: 8, Max: 15}
	for n, want := range map[int]bool{7: false, 8: true, 15: true, 16: false} {
		if got := b.Contains(n); got != want {
			t.Errorf("Contains(%d) = %v", n, got)
		}
	}
	if !(Band{}).Contains(1000) {
		t.Error("zero band is unbounded above")
	}
}
