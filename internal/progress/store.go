// Package progress holds the player's persisted campaign state: XP,
// scroll fragments, completed levels and the clue log.
//
// All mutation goes through Store methods. Out-of-range input is clamped,
// never rejected, and persistence failures are logged and swallowed so a
// broken disk never interrupts play.
package progress

import (
	"encoding/json"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/love-no-jutsu/internal/core"
)

const (
	// Namespace is the default key of the persisted record.
	Namespace = "love-no-jutsu-game"

	MaxXP        = 1000
	MaxFragments = 7
	FirstLevel   = 1
)

// State is the persisted progression record.
type State struct {
	XP              int      `json:"xp"`
	ScrollFragments int      `json:"scrollFragments"`
	CompletedLevels []int    `json:"completedLevels"`
	CurrentLevel    int      `json:"currentLevel"`
	Clues           []string `json:"clues"`
}

// DefaultState returns the state of a brand-new player.
func DefaultState() State {
	return State{
		CompletedLevels: []int{},
		CurrentLevel:    FirstLevel,
		Clues:           []string{},
	}
}

// clone returns a deep copy so callers never alias the store's slices.
func (s State) clone() State {
	s.CompletedLevels = slices.Clone(s.CompletedLevels)
	s.Clues = slices.Clone(s.Clues)
	if s.CompletedLevels == nil {
		s.CompletedLevels = []int{}
	}
	if s.Clues == nil {
		s.Clues = []string{}
	}
	return s
}

// normalize repairs a record read from disk so every field respects its bounds.
func (s State) normalize() State {
	out := DefaultState()
	out.XP = core.Clamp(s.XP, 0, MaxXP)
	out.ScrollFragments = core.Clamp(s.ScrollFragments, 0, MaxFragments)
	for _, n := range s.CompletedLevels {
		if !slices.Contains(out.CompletedLevels, n) {
			out.CompletedLevels = append(out.CompletedLevels, n)
		}
		out.CurrentLevel = core.Max(out.CurrentLevel, n+1)
	}
	out.CurrentLevel = core.Max(out.CurrentLevel, s.CurrentLevel)
	for _, c := range s.Clues {
		if !slices.Contains(out.Clues, c) {
			out.Clues = append(out.Clues, c)
		}
	}
	return out
}

// Persister is the durable record behind a Store.
type Persister interface {
	LoadProgress(namespace string) (data []byte, ok bool, err error)
	SaveProgress(namespace string, data []byte) error
}

// Store is the single owner of the progression state.
// It is safe for concurrent use; mutations are last-write-wins.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	namespace string
	logger    *log.Logger
}

// Open loads the record stored under namespace. A missing, unreadable or
// corrupt record yields the default state.
func Open(p Persister, namespace string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if namespace == "" {
		namespace = Namespace
	}
	s := &Store{
		state:     DefaultState(),
		persister: p,
		namespace: namespace,
		logger:    logger,
	}
	s.load()
	return s
}

func (s *Store) load() {
	if s.persister == nil {
		return
	}
	data, ok, err := s.persister.LoadProgress(s.namespace)
	if err != nil {
		s.logger.Warn("cannot load progress, starting fresh", "namespace", s.namespace, "error", err)
		return
	}
	if !ok {
		return
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.Warn("corrupt progress record, starting fresh", "namespace", s.namespace, "error", err)
		return
	}
	s.state = st.normalize()
}

// persist writes the current state. Caller holds mu.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn("cannot encode progress", "error", err)
		return
	}
	if err := s.persister.SaveProgress(s.namespace, data); err != nil {
		s.logger.Warn("cannot save progress, continuing in memory", "namespace", s.namespace, "error", err)
	}
}

// Namespace returns the key this store persists under.
func (s *Store) Namespace() string {
	return s.namespace
}

// AddXP adds amount (possibly negative) and clamps the total to [0, MaxXP].
func (s *Store) AddXP(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.XP = core.Clamp(s.state.XP+amount, 0, MaxXP)
	s.persist()
}

// AddScrollFragment collects one fragment; a no-op once MaxFragments is reached.
func (s *Store) AddScrollFragment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ScrollFragments = core.Min(s.state.ScrollFragments+1, MaxFragments)
	s.persist()
}

// AddClue appends text unless it is already in the log.
func (s *Store) AddClue(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.state.Clues, text) {
		s.state.Clues = append(s.state.Clues, text)
	}
	s.persist()
}

// CompleteLevel marks level n done and unlocks n+1.
func (s *Store) CompleteLevel(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.state.CompletedLevels, n) {
		s.state.CompletedLevels = append(s.state.CompletedLevels, n)
	}
	s.state.CurrentLevel = core.Max(s.state.CurrentLevel, n+1)
	s.persist()
}

// IsLevelUnlocked reports n <= CurrentLevel.
func (s *Store) IsLevelUnlocked(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return n <= s.state.CurrentLevel
}

// IsLevelCompleted reports whether n was ever completed.
func (s *Store) IsLevelCompleted(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.state.CompletedLevels, n)
}

// Reset restores the default state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = DefaultState()
	s.persist()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// XP returns the current XP.
func (s *Store) XP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.XP
}

// CurrentLevel returns the highest unlocked level.
func (s *Store) CurrentLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentLevel
}
