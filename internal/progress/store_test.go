package progress

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/love-no-jutsu/internal/core"
)

func newTestStore() (*Store, *MemoryPersister) {
	p := NewMemoryPersister()
	return Open(p, "", nil), p
}

func TestDefaultState(t *testing.T) {
	s, _ := newTestStore()
	got := s.Snapshot()
	if !reflect.DeepEqual(got, DefaultState()) {
		t.Errorf("fresh store = %+v, expected defaults", got)
	}
	if !s.IsLevelUnlocked(1) || s.IsLevelUnlocked(2) {
		t.Error("only level 1 should be unlocked initially")
	}
}

func TestAddXPStaysInBounds(t *testing.T) {
	s, _ := newTestStore()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		s.AddXP(rng.Intn(801) - 400)
		if xp := s.XP(); xp < 0 || xp > MaxXP {
			t.Fatalf("step %d: xp = %d out of [0, %d]", i, xp, MaxXP)
		}
	}
}

func TestAddXPClamping(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int
		want   int
	}{
		{"simple gain", []int{20, 20}, 40},
		{"penalty floors at zero", []int{5, -10}, 0},
		{"floor then gain", []int{-50, 15}, 15},
		{"ceiling", []int{900, 300}, MaxXP},
		{"ceiling then penalty", []int{1200, -10}, 990},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestStore()
			for _, d := range tc.deltas {
				s.AddXP(d)
			}
			if got := s.XP(); got != tc.want {
				t.Errorf("xp = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestScrollFragmentCap(t *testing.T) {
	s, _ := newTestStore()
	for i := 0; i < 10; i++ {
		s.AddScrollFragment()
		if f := s.Snapshot().ScrollFragments; f > MaxFragments {
			t.Fatalf("fragments = %d after %d calls", f, i+1)
		}
	}
	if f := s.Snapshot().ScrollFragments; f != MaxFragments {
		t.Errorf("fragments = %d, expected %d", f, MaxFragments)
	}
}

func TestAddClueDedup(t *testing.T) {
	s, _ := newTestStore()
	s.AddClue("first")
	s.AddClue("second")
	s.AddClue("first")

	want := []string{"first", "second"}
	if got := s.Snapshot().Clues; !reflect.DeepEqual(got, want) {
		t.Errorf("clues = %v, expected %v", got, want)
	}
}

func TestCompleteLevelUnlockMonotonic(t *testing.T) {
	s, _ := newTestStore()
	s.CompleteLevel(3)
	if !s.IsLevelUnlocked(4) {
		t.Error("completing level 3 should unlock level 4")
	}
	high := s.CurrentLevel()

	s.CompleteLevel(1)
	s.CompleteLevel(3)
	s.AddXP(-100)
	s.AddClue("x")

	for k := 1; k <= high; k++ {
		if !s.IsLevelUnlocked(k) {
			t.Errorf("level %d regressed to locked", k)
		}
	}
	if got := s.Snapshot().CompletedLevels; !reflect.DeepEqual(got, []int{3, 1}) {
		t.Errorf("completed = %v, expected [3 1]", got)
	}
	if s.CurrentLevel() != 4 {
		t.Errorf("current level = %d, expected 4", s.CurrentLevel())
	}
}

func TestResetIdempotent(t *testing.T) {
	s, _ := newTestStore()
	s.AddXP(300)
	s.AddScrollFragment()
	s.AddClue("c")
	s.CompleteLevel(5)

	s.Reset()
	if got := s.Snapshot(); !reflect.DeepEqual(got, DefaultState()) {
		t.Errorf("after Reset = %+v", got)
	}
	s.Reset()
	if got := s.Snapshot(); !reflect.DeepEqual(got, DefaultState()) {
		t.Errorf("after second Reset = %+v", got)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	p := NewMemoryPersister()
	s := Open(p, "ns", nil)
	s.AddXP(120)
	s.AddScrollFragment()
	s.AddClue("calm")
	s.CompleteLevel(1)

	reopened := Open(p, "ns", nil)
	if got, want := reopened.Snapshot(), s.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("reopened = %+v, expected %+v", got, want)
	}

	other := Open(p, "other", nil)
	if other.XP() != 0 {
		t.Error("namespaces should be independent")
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	s, _ := newTestStore()
	s.AddClue("a")
	snap := s.Snapshot()
	snap.Clues[0] = "mutated"
	if s.Snapshot().Clues[0] != "a" {
		t.Error("Snapshot should return a copy")
	}
}

type brokenPersister struct {
	loadErr error
	saves   int
}

func (b *brokenPersister) LoadProgress(string) ([]byte, bool, error) {
	return nil, false, b.loadErr
}

func (b *brokenPersister) SaveProgress(string, []byte) error {
	b.saves++
	return errors.New("disk full")
}

func TestPersistenceFailureIsSilent(t *testing.T) {
	p := &brokenPersister{loadErr: errors.New("unreadable")}
	s := Open(p, "", nil)

	s.AddXP(50)
	s.CompleteLevel(1)
	if s.XP() != 50 || !s.IsLevelUnlocked(2) {
		t.Error("store should keep working in memory when saving fails")
	}
	if p.saves != 2 {
		t.Errorf("saves attempted = %d, expected 2", p.saves)
	}
}

func TestCorruptRecordLoadsDefaults(t *testing.T) {
	p := NewMemoryPersister()
	_ = p.SaveProgress(Namespace, []byte("{not json"))
	s := Open(p, Namespace, nil)
	if got := s.Snapshot(); !reflect.DeepEqual(got, DefaultState()) {
		t.Errorf("corrupt record should load defaults, got %+v", got)
	}
}

func TestLoadNormalizesOutOfRangeRecord(t *testing.T) {
	p := NewMemoryPersister()
	_ = p.SaveProgress(Namespace, []byte(`{"xp":5000,"scrollFragments":-3,"completedLevels":[2,2,4],"currentLevel":0,"clues":["a","a"]}`))
	got := Open(p, Namespace, nil).Snapshot()

	want := State{XP: MaxXP, ScrollFragments: 0, CompletedLevels: []int{2, 4}, CurrentLevel: 5, Clues: []string{"a"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalized = %+v, expected %+v", got, want)
	}
}

func TestApplyCompletion(t *testing.T) {
	s, _ := newTestStore()

	lost := core.Outcome{Won: false, XPDeltas: []int{10}}
	if ApplyCompletion(s, 2, lost, "clue") {
		t.Fatal("a failed outcome must not be applied")
	}
	if got := s.Snapshot(); !reflect.DeepEqual(got, DefaultState()) {
		t.Fatalf("failed outcome changed state: %+v", got)
	}

	won := core.Outcome{Won: true, XPDeltas: []int{5, -10, 5}, CompletionXP: 200}
	if !ApplyCompletion(s, 2, won, "Even silent hearts panic in storms.") {
		t.Fatal("won outcome should be applied")
	}
	got := s.Snapshot()
	if got.XP != 205 {
		t.Errorf("xp = %d, expected 205 (clamped per delta)", got.XP)
	}
	if got.ScrollFragments != 1 || len(got.Clues) != 1 || got.CurrentLevel != 3 {
		t.Errorf("state after completion = %+v", got)
	}
}
