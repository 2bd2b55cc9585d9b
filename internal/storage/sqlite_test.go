package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestProgressRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.LoadProgress("ns"); err != nil || ok {
		t.Fatalf("LoadProgress on empty db = ok %v, err %v", ok, err)
	}

	if err := store.SaveProgress("ns", []byte(`{"xp":10}`)); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	if err := store.SaveProgress("ns", []byte(`{"xp":20}`)); err != nil {
		t.Fatalf("SaveProgress() overwrite failed: %v", err)
	}

	data, ok, err := store.LoadProgress("ns")
	if err != nil || !ok {
		t.Fatalf("LoadProgress() = ok %v, err %v", ok, err)
	}
	if string(data) != `{"xp":20}` {
		t.Errorf("data = %s, expected the latest record", data)
	}
}

func TestStoreBacksProgressionStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "campaign.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	p := progress.Open(store, progress.Namespace, nil)
	progress.ApplyCompletion(p, 1, core.Outcome{Won: true, XPDeltas: []int{20, 20}}, "The calm one was never truly alone.")
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got := progress.Open(reopened, progress.Namespace, nil).Snapshot()
	if got.XP != 40 || got.CurrentLevel != 2 || got.ScrollFragments != 1 || len(got.Clues) != 1 {
		t.Errorf("restored state = %+v", got)
	}
}

func TestTopResults(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []LevelResult{
		{Level: 1, Outcome: OutcomeWon, XPEarned: 200},
		{Level: 1, Outcome: OutcomeWon, XPEarned: 120},
		{Level: 1, Outcome: OutcomeFailed, XPEarned: 500},
		{Level: 1, Outcome: OutcomeWon, XPEarned: 300},
		{Level: 2, Outcome: OutcomeWon, XPEarned: 900},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(1, 2)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 2 || top[0].XPEarned != 300 || top[1].XPEarned != 200 {
		t.Errorf("top = %+v, expected won results 300 then 200", top)
	}
}

func TestRecentResultsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	for level := 1; level <= 4; level++ {
		store.SaveResult(LevelResult{Level: level, Outcome: OutcomeWon})
	}

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Level != 4 || recent[2].Level != 2 {
		t.Errorf("recent = %+v", recent)
	}
}

func TestLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats(3)
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Plays != 0 || empty.BestXP != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveResult(LevelResult{Level: 3, Outcome: OutcomeFailed, XPEarned: 40})
	store.SaveResult(LevelResult{Level: 3, Outcome: OutcomeWon, XPEarned: 250})
	store.SaveResult(LevelResult{Level: 3, Outcome: OutcomeWon, XPEarned: 180})
	store.SaveResult(LevelResult{Level: 6, Outcome: OutcomeFailed, XPEarned: 0})

	stats, err := store.GetLevelStats(3)
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Plays != 3 || stats.Wins != 2 || stats.BestXP != 250 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 2 || all[6].Wins != 0 || all[6].Plays != 1 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)
	store.SaveResult(LevelResult{Level: 1, Outcome: OutcomeWon})
	store.SaveProgress("ns", []byte(`{}`))

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	if recent, _ := store.RecentResults(10); len(recent) != 0 {
		t.Errorf("results remain after clear: %+v", recent)
	}
	if _, ok, _ := store.LoadProgress("ns"); !ok {
		t.Error("clearing results must not touch progress")
	}
}
