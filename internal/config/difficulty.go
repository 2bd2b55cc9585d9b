package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// PresetScale returns the factor applied to durations and spawn intervals.
// Larger means more time and slower spawns.
func PresetScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

func scaleInt(v int, f float64) int {
	if v <= 0 {
		return v
	}
	return max(1, int(math.Round(float64(v)*f)))
}

// ApplyLevelsPreset scales every timed level's duration and spawn interval.
// Fixed and normal leave the table untouched.
func ApplyLevelsPreset(cfg *LevelsConfig, preset DifficultyPreset) {
	f := PresetScale(preset)
	if f == 1.0 {
		return
	}

	cfg.SilentShinobi.DurationSecs = scaleInt(cfg.SilentShinobi.DurationSecs, f)
	cfg.SilentShinobi.SpawnIntervalMS = scaleInt(cfg.SilentShinobi.SpawnIntervalMS, f)
	cfg.Balance.DurationSecs = scaleInt(cfg.Balance.DurationSecs, f)
	cfg.Storm.DurationSecs = scaleInt(cfg.Storm.DurationSecs, f)
	cfg.Storm.SpawnIntervalMS = scaleInt(cfg.Storm.SpawnIntervalMS, f)

	// Easier runs also fall slower; harder runs faster.
	cfg.SilentShinobi.FallPerStep /= f
}
