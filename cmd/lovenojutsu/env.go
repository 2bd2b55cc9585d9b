package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/love-no-jutsu/internal/audio"
	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/platform/tui"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/storage"
)

// session bundles what one local run needs and how to release it.
type session struct {
	env     *tui.Env
	store   *storage.Store
	logFile *os.File
}

// newLogger writes to stderr, or to a file while the terminal belongs to
// the alternate screen.
func newLogger(interactive bool) (*log.Logger, *os.File) {
	opts := log.Options{ReportTimestamp: true, Prefix: "lovenojutsu"}
	if !interactive {
		return log.NewWithOptions(os.Stderr, opts), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), nil
	}
	dir := filepath.Join(home, ".lovenojutsu")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "lovenojutsu.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), nil
	}
	return log.NewWithOptions(f, opts), f
}

// loadDeps reads the level tables and quiz content from the global flags.
func loadDeps(logger *log.Logger) (registry.Deps, error) {
	levels, err := config.LoadLevels(flagConfig)
	if err != nil {
		return registry.Deps{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Deps{}, err
	}
	config.ApplyLevelsPreset(&levels, preset)

	content, err := config.LoadQuiz(flagQuiz)
	if err != nil {
		return registry.Deps{}, err
	}
	return registry.Deps{Levels: levels, Quiz: content, Logger: logger}, nil
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openSession loads configuration, storage and progress. Storage and
// audio problems degrade to in-memory play and silence.
func openSession(interactive bool) (*session, error) {
	logger, logFile := newLogger(interactive)

	deps, err := loadDeps(logger)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	s := &session{logFile: logFile}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("progress will not be saved", "error", err)
	} else {
		s.store = store
	}

	var persister progress.Persister
	if s.store != nil {
		persister = s.store
	}

	width, height := terminalSize()
	s.env = &tui.Env{
		Deps:     deps,
		Progress: progress.Open(persister, flagNamespace, logger),
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	}
	if s.store != nil {
		s.env.History = s.store
	}
	if flagMute || !interactive {
		s.env.Audio = audio.Noop{}
	} else {
		s.env.Audio = audio.NewPlayer(logger)
	}
	return s, nil
}

func (s *session) Close() {
	if s.env.Audio != nil {
		s.env.Audio.Stop()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// mustOpenSession opens a session or exits with the error.
func mustOpenSession(interactive bool) *session {
	s, err := openSession(interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}
