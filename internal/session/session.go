// Package session runs one timed attempt at a level.
//
// A Session owns a single authoritative clock. Each Advance call drives the
// countdown, then spawning, then motion, always in that order, so there is
// exactly one timer to stop when the player leaves.
package session

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/love-no-jutsu/internal/core"
)

// XPRule is a level's scoring table. Values may be negative.
type XPRule struct {
	Correct         int
	Incorrect       int
	PerSecondInBand int
	Completion      int
}

// Band is an inclusive target range on the correct counter.
// Max == 0 means unbounded.
type Band struct {
	Min, Max int
}

// Contains reports whether n lies inside the band.
func (b Band) Contains(n int) bool {
	return n >= b.Min && (b.Max == 0 || n <= b.Max)
}

// Verdict is the result of evaluating a session at time-out.
type Verdict struct {
	Won    bool
	Reason string
}

// Spawner creates new entities. The session assigns ID and state.
type Spawner interface {
	Spawn(rng *rand.Rand) Entity
}

// Mover advances one entity by one motion step.
// Returning false removes the entity without scoring.
type Mover interface {
	Move(e *Entity) bool
}

// Failure reasons set by the engine itself.
const (
	ReasonTooFew    = "too few"
	ReasonExceeded  = "limit exceeded"
	ReasonAbandoned = "abandoned"
	ReasonTimeUp    = "time up"
)

// Config describes one level's loop.
type Config struct {
	Duration      int           // Seconds; 0 means untimed
	SpawnInterval time.Duration // 0 disables spawning
	MotionStep    time.Duration // 0 disables motion
	MaxEntities   int           // Oldest are evicted beyond this; 0 means unbounded
	Band          Band          // Target range on the correct counter
	XP            XPRule

	Spawner Spawner
	Mover   Mover

	// OnSecond runs once per elapsed second, after the countdown decrement.
	OnSecond func(s *Session)
	// Evaluate decides the outcome at time-out. Nil checks Band.
	Evaluate func(s *Session) Verdict
}

// Session is the ephemeral state of one level attempt.
// It is not safe for concurrent use; the platform drives it from one loop.
type Session struct {
	cfg Config
	rng *rand.Rand

	phase         core.Phase
	reason        string
	timeRemaining int

	secondAcc time.Duration
	spawnAcc  time.Duration
	motionAcc time.Duration

	entities []Entity
	nextID   int

	correct   int
	incorrect int
	moves     int
	ledger    []int
	xp        int
	bonus     int
}

// New creates a session in the NotStarted phase.
func New(cfg Config, seed int64) *Session {
	return &Session{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(seed)),
		phase:         core.PhaseNotStarted,
		timeRemaining: cfg.Duration,
		nextID:        1,
	}
}

// Start moves NotStarted to Active. Any other phase is left alone.
func (s *Session) Start() {
	if s.phase == core.PhaseNotStarted {
		s.phase = core.PhaseActive
	}
}

// Phase returns the current phase.
func (s *Session) Phase() core.Phase { return s.phase }

// Reason returns the completion or failure message.
func (s *Session) Reason() string { return s.reason }

// TimeRemaining returns the whole seconds left on the countdown.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// Rand exposes the session RNG so level hooks stay deterministic.
func (s *Session) Rand() *rand.Rand { return s.rng }

// Correct returns the number of correct interactions.
func (s *Session) Correct() int { return s.correct }

// Incorrect returns the number of incorrect interactions.
func (s *Session) Incorrect() int { return s.incorrect }

// XP returns the XP earned so far, unclamped.
func (s *Session) XP() int { return s.xp + s.bonus }

// Accuracy returns the correct percentage of all interactions.
func (s *Session) Accuracy() int {
	return core.Accuracy(s.correct, s.incorrect)
}

// Active reports whether the session accepts ticks and interactions.
func (s *Session) Active() bool {
	return s.phase == core.PhaseActive || s.phase == core.PhaseResolving
}

// Advance moves the clock forward by dt.
func (s *Session) Advance(dt time.Duration) {
	if !s.Active() || dt <= 0 {
		return
	}

	if s.cfg.Duration > 0 || s.cfg.OnSecond != nil {
		s.secondAcc += dt
		for s.secondAcc >= time.Second && s.Active() {
			s.secondAcc -= time.Second
			s.tickSecond()
		}
		if !s.Active() {
			return
		}
	}

	if s.cfg.SpawnInterval > 0 && s.cfg.Spawner != nil {
		s.spawnAcc += dt
		for s.spawnAcc >= s.cfg.SpawnInterval {
			s.spawnAcc -= s.cfg.SpawnInterval
			s.spawn()
		}
	}

	if s.cfg.MotionStep > 0 && s.cfg.Mover != nil {
		s.motionAcc += dt
		for s.motionAcc >= s.cfg.MotionStep {
			s.motionAcc -= s.cfg.MotionStep
			s.move()
		}
	}
}

func (s *Session) tickSecond() {
	if s.cfg.Duration > 0 {
		s.timeRemaining--
	}
	if s.cfg.XP.PerSecondInBand != 0 && s.cfg.Band.Contains(s.correct) {
		s.Award(s.cfg.XP.PerSecondInBand)
	}
	if s.cfg.OnSecond != nil {
		s.cfg.OnSecond(s)
	}
	if !s.Active() {
		return
	}
	if s.cfg.Duration > 0 && s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.evaluate()
	}
}

func (s *Session) evaluate() {
	var v Verdict
	if s.cfg.Evaluate != nil {
		v = s.cfg.Evaluate(s)
	} else if s.correct < s.cfg.Band.Min {
		v = Verdict{Reason: ReasonTooFew}
	} else {
		v = Verdict{Won: true, Reason: ReasonTimeUp}
	}
	if v.Won {
		s.Complete(v.Reason)
	} else {
		s.Fail(v.Reason)
	}
}

func (s *Session) spawn() {
	e := s.cfg.Spawner.Spawn(s.rng)
	e.ID = s.nextID
	e.State = EntityActive
	s.nextID++
	s.entities = append(s.entities, e)
	if limit := s.cfg.MaxEntities; limit > 0 && len(s.entities) > limit {
		s.entities = slices.Delete(s.entities, 0, len(s.entities)-limit)
	}
}

func (s *Session) move() {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if s.cfg.Mover.Move(&e) {
			kept = append(kept, e)
		}
	}
	s.entities = kept
}

// Award appends an XP delta to the session ledger.
func (s *Session) Award(delta int) {
	if delta == 0 {
		return
	}
	s.ledger = append(s.ledger, delta)
	s.xp += delta
}

// CountMove increments the move counter.
func (s *Session) CountMove() {
	if s.Active() {
		s.moves++
	}
}

// Moves returns the move counter.
func (s *Session) Moves() int { return s.moves }

// Resolve applies a player interaction to the active entity with the given id.
// It returns false when there is no such entity or the session is not active.
func (s *Session) Resolve(id int) (Entity, bool) {
	if !s.Active() {
		return Entity{}, false
	}
	i := slices.IndexFunc(s.entities, func(e Entity) bool { return e.ID == id && e.State == EntityActive })
	if i < 0 {
		return Entity{}, false
	}
	e := s.entities[i]
	e.State = EntityResolved
	s.entities = slices.Delete(s.entities, i, i+1)
	s.Score(e.Category)
	return e, true
}

// Score records one classified interaction not tied to a spawned entity.
func (s *Session) Score(c Category) {
	if !s.Active() {
		return
	}
	switch c {
	case CategoryCorrect:
		s.correct++
		s.Award(s.cfg.XP.Correct)
		if s.cfg.Band.Max > 0 && s.correct > s.cfg.Band.Max {
			s.Fail(ReasonExceeded)
		}
	case CategoryIncorrect:
		s.incorrect++
		s.Award(s.cfg.XP.Incorrect)
	}
}

// Complete ends the session as won and books the completion bonus.
func (s *Session) Complete(reason string) {
	if !s.Active() {
		return
	}
	s.phase = core.PhaseComplete
	s.reason = reason
	s.bonus = s.cfg.XP.Completion
	s.entities = nil
}

// Fail ends the session as lost.
func (s *Session) Fail(reason string) {
	if s.phase.Terminal() {
		return
	}
	s.phase = core.PhaseFailed
	s.reason = reason
	s.entities = nil
}

// Abort discards the session after an external exit.
func (s *Session) Abort() {
	s.Fail(ReasonAbandoned)
}

// SetResolving toggles the transient Resolving sub-phase.
func (s *Session) SetResolving(on bool) {
	switch {
	case on && s.phase == core.PhaseActive:
		s.phase = core.PhaseResolving
	case !on && s.phase == core.PhaseResolving:
		s.phase = core.PhaseActive
	}
}

// Entities returns a copy of the live entity pool, oldest first.
func (s *Session) Entities() []Entity {
	return slices.Clone(s.entities)
}

// Outcome summarizes a finished session. Only meaningful once terminal.
func (s *Session) Outcome() core.Outcome {
	return core.Outcome{
		Won:          s.phase == core.PhaseComplete,
		Reason:       s.reason,
		XPDeltas:     slices.Clone(s.ledger),
		CompletionXP: s.bonus,
		Moves:        s.moves,
		Accuracy:     s.Accuracy(),
		Seconds:      s.cfg.Duration - s.timeRemaining,
	}
}

// State reports the session in the platform's terms.
func (s *Session) State() core.GameState {
	st := core.GameState{Phase: s.phase, XP: s.XP()}
	if s.phase.Terminal() {
		o := s.Outcome()
		st.Outcome = &o
	}
	return st
}
