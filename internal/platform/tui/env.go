package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/love-no-jutsu/internal/audio"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/storage"
)

// History is the level result log. *storage.Store implements it.
type History interface {
	SaveResult(r storage.LevelResult) (int64, error)
	RecentResults(limit int) ([]storage.LevelResult, error)
	GetAllLevelStats() (map[int]*storage.LevelStats, error)
}

// Env is everything one player's campaign runs against.
type Env struct {
	Deps     registry.Deps
	Progress *progress.Store
	History  History       // Optional
	Audio    audio.Service // Optional, nil means muted
	Config   core.RuntimeConfig
}

func (e *Env) sound() audio.Service {
	if e.Audio == nil {
		return audio.Noop{}
	}
	return e.Audio
}

func (e *Env) logger() *log.Logger {
	if e.Deps.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Deps.Logger
}

// record appends a finished attempt to the history. Failures are logged
// and play goes on.
func (e *Env) record(level int, o core.Outcome) {
	if e.History == nil {
		return
	}
	label := storage.OutcomeFailed
	if o.Won {
		label = storage.OutcomeWon
	}
	_, err := e.History.SaveResult(storage.LevelResult{
		Level:        level,
		Outcome:      label,
		XPEarned:     o.EarnedXP(),
		Moves:        o.Moves,
		Accuracy:     o.Accuracy,
		DurationSecs: o.Seconds,
	})
	if err != nil {
		e.logger().Warn("cannot save level result", "level", level, "error", err)
	}
}
