// Package registry provides the level registry.
// Levels register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/quiz"
)

// Game is the interface every level (and the quiz) implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, persistence and rendering.
type Game interface {
	// ID returns the route of this game (e.g. "level-3", "quiz").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Level returns the campaign level number, or 0 for side content.
	Level() int

	// Reset starts a brand-new attempt with no residual state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current state.
	State() core.GameState
}

// Deps carries everything a level factory may need.
type Deps struct {
	Levels config.LevelsConfig
	Quiz   quiz.Content
	Logger *log.Logger
}

// DefaultDeps returns the built-in tables with a discarding logger.
func DefaultDeps() Deps {
	return Deps{
		Levels: config.DefaultLevels(),
		Quiz:   config.DefaultQuiz(),
		Logger: log.New(io.Discard),
	}
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Level int
}

// Factory creates a new instance of a game.
type Factory func(deps Deps) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f

	g := f(DefaultDeps())
	infos[id] = GameInfo{ID: id, Title: g.Title(), Level: g.Level()}
}

// List returns all registered games: campaign levels in order, then side content by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if (a.Level == 0) != (b.Level == 0) {
			return a.Level != 0
		}
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		return a.ID < b.ID
	})
	return result
}

// Levels returns only the campaign levels, in order.
func Levels() []GameInfo {
	var out []GameInfo
	for _, info := range List() {
		if info.Level > 0 {
			out = append(out, info)
		}
	}
	return out
}

// Create instantiates a game by ID.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return f(deps), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}
