// Package config provides YAML level tables, quiz content loading and
// difficulty presets.
package config

import "time"

// LevelsConfig holds the tunables of every level plus the clue log.
type LevelsConfig struct {
	Memory        MemoryConfig   `yaml:"memory"`
	SilentShinobi ShinobiConfig  `yaml:"silent_shinobi"`
	Traits        TraitsConfig   `yaml:"traits"`
	Balance       BalanceConfig  `yaml:"balance"`
	Puzzle        PuzzleConfig   `yaml:"puzzle"`
	Storm         StormConfig    `yaml:"storm"`
	WordHunt      WordHuntConfig `yaml:"word_hunt"`
	Clues         map[int]string `yaml:"clues"`
}

// XPTable is one level's scoring law. Levels read only the fields they use.
type XPTable struct {
	Correct         int `yaml:"correct"`
	Incorrect       int `yaml:"incorrect"`
	PerSecondInBand int `yaml:"per_second_in_band"`
	Completion      int `yaml:"completion"`
}

// MemoryConfig defines level 1, pair matching.
type MemoryConfig struct {
	Pairs           []string `yaml:"pairs"`
	MatchDelayMS    int      `yaml:"match_delay_ms"`
	MismatchDelayMS int      `yaml:"mismatch_delay_ms"`
	XP              XPTable  `yaml:"xp"`
}

// ShinobiConfig defines level 2, tapping falling items.
type ShinobiConfig struct {
	DurationSecs    int      `yaml:"duration_secs"`
	SpawnIntervalMS int      `yaml:"spawn_interval_ms"`
	MotionStepMS    int      `yaml:"motion_step_ms"`
	MaxItems        int      `yaml:"max_items"`
	FallPerStep     float64  `yaml:"fall_per_step"`
	Lanes           int      `yaml:"lanes"`
	SpawnY          float64  `yaml:"spawn_y"`
	RemoveY         float64  `yaml:"remove_y"`
	FieldHeight     float64  `yaml:"field_height"`
	CorrectItems    []string `yaml:"correct_items"`
	WrongItems      []string `yaml:"wrong_items"`
	CorrectWeight   int      `yaml:"correct_weight"`
	WrongWeight     int      `yaml:"wrong_weight"`
	Target          int      `yaml:"target"`
	MinCorrect      int      `yaml:"min_correct"`
	XP              XPTable  `yaml:"xp"`
}

// Trait is one card of the sorting level.
type Trait struct {
	Name string `yaml:"name"`
	Zone string `yaml:"zone"`
}

// TraitsConfig defines level 3, sorting traits into zones.
type TraitsConfig struct {
	Zones      []string `yaml:"zones"`
	Traits     []Trait  `yaml:"traits"`
	FeedbackMS int      `yaml:"feedback_ms"`
	XP         XPTable  `yaml:"xp"`
}

// BalanceConfig defines level 4, keeping two meters balanced.
type BalanceConfig struct {
	DurationSecs int        `yaml:"duration_secs"`
	Labels       [2]string  `yaml:"labels"`
	Start        [2]float64 `yaml:"start"`
	Push         float64    `yaml:"push"`
	Pull         float64    `yaml:"pull"`
	DriftBias    float64    `yaml:"drift_bias"`
	DriftScale   float64    `yaml:"drift_scale"`
	Center       float64    `yaml:"center"`
	Threshold    float64    `yaml:"threshold"`
	RequiredSecs int        `yaml:"required_secs"`
	XP           XPTable    `yaml:"xp"`
}

// Picture is one swap puzzle; Tiles reads left to right, top to bottom
// when solved.
type Picture struct {
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
	Tiles   string `yaml:"tiles"`
}

// PuzzleConfig defines level 5, swap puzzles.
type PuzzleConfig struct {
	Size     int       `yaml:"size"`
	Pictures []Picture `yaml:"pictures"`
	XP       XPTable   `yaml:"xp"`
}

// StormConfig defines level 6, collecting drama inside a band.
type StormConfig struct {
	DurationSecs    int      `yaml:"duration_secs"`
	ArenaSize       float64  `yaml:"arena_size"`
	SpawnMargin     float64  `yaml:"spawn_margin"`
	SpawnIntervalMS int      `yaml:"spawn_interval_ms"`
	MaxIcons        int      `yaml:"max_icons"`
	DramaWeight     int      `yaml:"drama_weight"`
	SilenceWeight   int      `yaml:"silence_weight"`
	DramaIcons      []string `yaml:"drama_icons"`
	SilenceIcons    []string `yaml:"silence_icons"`
	MoveStep        float64  `yaml:"move_step"`
	MinPos          float64  `yaml:"min_pos"`
	MaxPos          float64  `yaml:"max_pos"`
	CollectRadius   float64  `yaml:"collect_radius"`
	BandMin         int      `yaml:"band_min"`
	BandMax         int      `yaml:"band_max"`
	XP              XPTable  `yaml:"xp"`
}

// WordHuntConfig defines level 7, the word search.
type WordHuntConfig struct {
	Words        []string `yaml:"words"`
	SpecialWords []string `yaml:"special_words"`
	XPPerWord    int      `yaml:"xp_per_word"`
	XPSpecial    int      `yaml:"xp_special"`
	XP           XPTable  `yaml:"xp"`
}

// Ms converts a millisecond table value to a duration.
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Clue returns the clue for level n, or "".
func (c LevelsConfig) Clue(n int) string {
	return c.Clues[n]
}
