package tui

import (
	"fmt"
	"time"

	xpbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/love-no-jutsu/internal/audio"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
)

// footerHeight is the number of rows under the level reserved for the XP bar.
const footerHeight = 1

// Model is the Bubble Tea model running one level attempt.
type Model struct {
	game       registry.Game
	env        *Env
	screen     *core.Screen
	config     core.RuntimeConfig
	attempt    uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	bar        xpbar.Model
	finished   bool   // Outcome already applied for this attempt
	unlocked   bool   // Whether the outcome completed the level
	next       string // Route to open once the player leaves
	quitting   bool
}

// NewModel creates a model for game and starts a fresh attempt.
func NewModel(game registry.Game, env *Env, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		env:        env,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerHeight, 1)),
		config:     cfg,
		attempt:    nextAttempt(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		bar: xpbar.New(
			xpbar.WithGradient("#FF5FAF", "#FFD7FF"),
			xpbar.WithoutPercentage(),
			xpbar.WithWidth(barWidth(cfg.ScreenW)),
		),
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

func barWidth(screenW int) int {
	return core.Clamp(screenW-40, 10, 40)
}

// Init switches to the level track and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.env.sound().Play(audio.TrackGame)
	return tickCmd(m.attempt, m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-footerHeight, 1))
		m.bar.Width = barWidth(msg.Width)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey queues the action for the next tick, or navigates once the
// attempt is over.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.leave("")
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.Over() {
		switch action {
		case core.ActionConfirm:
			if m.gameState.Outcome != nil && m.gameState.Outcome.Won {
				m.next = m.continueRoute()
			} else {
				m.restart()
			}
		case core.ActionRestart:
			m.restart()
		case core.ActionBack:
			m.next = registry.RouteMenu
		}
		return m, nil
	}

	if action == core.ActionBack {
		m.leave(registry.RouteMenu)
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// aborter is implemented by levels that track abandonment.
type aborter interface {
	Abort()
}

// leave abandons a running attempt. Abandoned attempts record nothing.
func (m *Model) leave(route string) {
	if a, ok := m.game.(aborter); ok && !m.gameState.Over() {
		a.Abort()
	}
	m.next = route
}

func (m Model) continueRoute() string {
	if m.game.Level() == 0 {
		return registry.RouteMenu
	}
	return registry.NextRoute(m.game.Level())
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.finished = false
	m.unlocked = false
	m.inputFrame.Clear()
	m.env.sound().Play(audio.TrackGame)
}

// handleTick runs one simulation step. Ticks of another attempt, or
// arriving after the player left, end their chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Attempt != m.attempt || m.next != "" || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Over() && !m.finished {
		m.finish()
	}

	return m, tickCmd(m.attempt, m.config.TickDuration())
}

// finish applies the outcome exactly once per attempt: a won campaign
// level runs the completion sequence, and every campaign attempt lands
// in the history.
func (m *Model) finish() {
	m.finished = true
	o := m.gameState.Outcome
	level := m.game.Level()
	if o == nil || level == 0 {
		return
	}
	if o.Won {
		m.unlocked = progress.ApplyCompletion(m.env.Progress, level, *o, m.env.Deps.Levels.Clue(level))
		m.env.sound().Play(audio.TrackVictory)
	}
	m.env.record(level, *o)
}

// View renders the level, the result box once it is over and the XP bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.finished {
		m.drawResult()
	}
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) drawResult() {
	o := m.gameState.Outcome
	if o == nil {
		return
	}
	level := m.game.Level()
	switch {
	case level == 0:
		m.screen.DrawOverlay(core.ColorPink,
			"Finished!",
			o.Reason,
			"",
			"Enter: menu   R: play again")
	case o.Won:
		st := m.env.Progress.Snapshot()
		lines := []string{
			fmt.Sprintf("Level %d complete!", level),
			o.Reason,
			fmt.Sprintf("+%d XP   Scroll %d/%d", o.EarnedXP(), st.ScrollFragments, progress.MaxFragments),
		}
		if clue := m.env.Deps.Levels.Clue(level); clue != "" {
			lines = append(lines, "", fmt.Sprintf("%q", clue))
		}
		lines = append(lines, "", "Enter: continue   R: replay   B: menu")
		m.screen.DrawOverlay(core.ColorPink, lines...)
	default:
		m.screen.DrawOverlay(core.ColorRed,
			fmt.Sprintf("Level %d failed", level),
			o.Reason,
			"",
			"Enter/R: try again   B: menu")
	}
}

func (m Model) footer() string {
	st := m.env.Progress.Snapshot()
	ratio := float64(st.XP) / float64(progress.MaxXP)
	return fmt.Sprintf(" XP %s %d/%d   Scrolls %d/%d",
		m.bar.ViewAs(ratio), st.XP, progress.MaxXP, st.ScrollFragments, progress.MaxFragments)
}

// Next returns the route chosen after leaving, or "" while the level runs.
func (m Model) Next() string {
	return m.next
}

// IsQuitting returns true if the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the last observed level state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Unlocked reports whether this attempt completed its level.
func (m Model) Unlocked() bool {
	return m.unlocked
}
