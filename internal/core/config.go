package core

import "time"

// RuntimeConfig contains configuration passed to levels at initialization.
// Levels use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated time covered by one Step.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Phase is the lifecycle stage of a level attempt.
// NotStarted -> Active -> {Complete | Failed}; Resolving is a transient
// sub-state of Active used while a comparison is on display.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseActive
	PhaseResolving
	PhaseComplete
	PhaseFailed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseActive:
		return "active"
	case PhaseResolving:
		return "resolving"
	case PhaseComplete:
		return "complete"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseFailed
}

// Outcome is the result of a finished level attempt.
// XPDeltas preserves every scoring event in order so the progression store
// can clamp after each one, exactly as live play would.
type Outcome struct {
	Won          bool
	Reason       string // Failure reason or completion message
	XPDeltas     []int
	CompletionXP int
	Moves        int
	Accuracy     int
	Seconds      int // Session time consumed
}

// EarnedXP sums the ledger and the completion bonus (unclamped, for display).
func (o Outcome) EarnedXP() int {
	total := o.CompletionXP
	for _, d := range o.XPDeltas {
		total += d
	}
	return total
}

// GameState represents the current state of a level.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase   Phase
	XP      int      // XP earned in this attempt (display only)
	Paused  bool     // Whether the level is paused
	Outcome *Outcome // Set once Phase is terminal
}

// Over reports whether the attempt reached a terminal phase.
func (s GameState) Over() bool {
	return s.Phase.Terminal()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
