package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/love-no-jutsu/internal/quiz"
	"github.com/vovakirdan/love-no-jutsu/internal/wordsearch"
)

func TestEmbeddedLevelsMatchDefaults(t *testing.T) {
	var cfg LevelsConfig
	if err := yaml.Unmarshal(defaultLevelsYAML, &cfg); err != nil {
		t.Fatalf("embedded levels.yaml does not parse: %v", err)
	}
	if want := DefaultLevels(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded levels.yaml drifted from DefaultLevels()\n got: %+v\nwant: %+v", cfg, want)
	}
}

func TestEmbeddedQuizMatchesDefaults(t *testing.T) {
	var c quiz.Content
	if err := yaml.Unmarshal(defaultQuizYAML, &c); err != nil {
		t.Fatalf("embedded quiz.yaml does not parse: %v", err)
	}
	if want := DefaultQuiz(); !reflect.DeepEqual(c, want) {
		t.Errorf("embedded quiz.yaml drifted from DefaultQuiz()\n got: %+v\nwant: %+v", c, want)
	}
}

func TestDefaultLevelsSanity(t *testing.T) {
	cfg := DefaultLevels()

	if len(cfg.Memory.Pairs) != 10 {
		t.Errorf("memory pairs = %d, expected 10", len(cfg.Memory.Pairs))
	}
	if len(cfg.Traits.Traits) != 19 {
		t.Errorf("traits = %d, expected 19", len(cfg.Traits.Traits))
	}
	for _, tr := range cfg.Traits.Traits {
		found := false
		for _, z := range cfg.Traits.Zones {
			found = found || z == tr.Zone
		}
		if !found {
			t.Errorf("trait %q names unknown zone %q", tr.Name, tr.Zone)
		}
	}
	for _, p := range cfg.Puzzle.Pictures {
		if n := len([]rune(p.Tiles)); n != cfg.Puzzle.Size*cfg.Puzzle.Size {
			t.Errorf("picture %q has %d tiles", p.Title, n)
		}
	}
	if len(cfg.WordHunt.Words) != 14 {
		t.Errorf("word hunt words = %d, expected 14", len(cfg.WordHunt.Words))
	}
	if got := wordsearch.SideLength(cfg.WordHunt.Words); got != 14 {
		t.Errorf("word hunt side = %d, expected 14", got)
	}
	for n := 1; n <= 7; n++ {
		if cfg.Clue(n) == "" {
			t.Errorf("level %d has no clue", n)
		}
	}
}

func TestLoadLevelsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	doc := "storm:\n  duration_secs: 10\n  band_min: 8\n  band_max: 15\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLevels(path)
	if err != nil {
		t.Fatalf("LoadLevels() failed: %v", err)
	}
	if cfg.Storm.DurationSecs != 10 || cfg.Storm.BandMax != 15 {
		t.Errorf("storm = %+v", cfg.Storm)
	}
}

func TestLoadLevelsCustomPathErrors(t *testing.T) {
	if _, err := LoadLevels(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("storm: [unclosed"), 0o644)
	_, err := LoadLevels(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("err = %v, expected parse failure", err)
	}
}

func TestLoadQuizCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	doc := "rounds:\n  - title: Solo\n    questions:\n      - question: Yes?\n        options: [yes, no]\n        correct_answer: 0\n"
	os.WriteFile(path, []byte(doc), 0o644)

	c, err := LoadQuiz(path)
	if err != nil {
		t.Fatalf("LoadQuiz() failed: %v", err)
	}
	if c.Total() != 1 || c.Rounds[0].EndPhoto != nil {
		t.Errorf("content = %+v", c)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyFixed, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestApplyLevelsPreset(t *testing.T) {
	fixed := DefaultLevels()
	ApplyLevelsPreset(&fixed, DifficultyFixed)
	if !reflect.DeepEqual(fixed, DefaultLevels()) {
		t.Error("fixed preset must not change the table")
	}

	easy := DefaultLevels()
	ApplyLevelsPreset(&easy, DifficultyEasy)
	if easy.Storm.DurationSecs != 31 || easy.SilentShinobi.SpawnIntervalMS != 1000 {
		t.Errorf("easy storm = %ds, shinobi spawn = %dms", easy.Storm.DurationSecs, easy.SilentShinobi.SpawnIntervalMS)
	}

	hard := DefaultLevels()
	ApplyLevelsPreset(&hard, DifficultyHard)
	if hard.Balance.DurationSecs != 24 || hard.Storm.SpawnIntervalMS != 800 {
		t.Errorf("hard balance = %ds, storm spawn = %dms", hard.Balance.DurationSecs, hard.Storm.SpawnIntervalMS)
	}
	if hard.SilentShinobi.FallPerStep <= fixed.SilentShinobi.FallPerStep {
		t.Error("hard items should fall faster")
	}
	if hard.Storm.BandMin != fixed.Storm.BandMin {
		t.Error("presets must not move win bands")
	}
}
