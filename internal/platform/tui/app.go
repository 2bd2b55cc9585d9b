package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/love-no-jutsu/internal/audio"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
)

// view is the screen the app is showing.
type view int

const (
	viewMenu view = iota
	viewLevel
	viewTreasure
	viewProgress
)

// App manages the campaign flow: menu -> level -> completion -> next route.
// It is the top-level model for local play and for SSH sessions.
type App struct {
	env      *Env
	width    int
	height   int
	view     view
	menu     MenuModel
	level    *Model
	treasure TreasureModel
	stats    ProgressModel
	initCmd  tea.Cmd
	quitting bool
}

// NewApp creates the app showing route first. Unknown or locked routes
// fall back to the menu.
func NewApp(env *Env, route string) App {
	a := App{
		env:    env,
		width:  env.Config.ScreenW,
		height: env.Config.ScreenH,
	}
	a.initCmd = a.open(route)
	return a
}

// open switches to the screen behind route.
func (a *App) open(route string) tea.Cmd {
	a.level = nil
	log := a.env.logger()

	switch route {
	case "", registry.RouteMenu:
		a.view = viewMenu
		a.menu = NewMenuModel(a.env, a.width, a.height)
		a.env.sound().Play(audio.TrackRomantic)
		return nil

	case registry.RouteTreasure:
		a.view = viewTreasure
		a.treasure = NewTreasureModel(a.env, a.width)
		a.env.sound().Play(audio.TrackVictory)
		return nil

	case routeProgress:
		a.view = viewProgress
		a.stats = NewProgressModel(a.env, a.width, a.height)
		return nil
	}

	if n, ok := registry.ParseLevelRoute(route); ok && !a.env.Progress.IsLevelUnlocked(n) {
		log.Warn("level is locked", "route", route, "current", a.env.Progress.CurrentLevel())
		return a.open(registry.RouteMenu)
	}

	game, err := registry.Create(route, a.env.Deps)
	if err != nil {
		log.Warn("cannot open route", "route", route, "error", err)
		return a.open(registry.RouteMenu)
	}

	cfg := a.env.Config
	cfg.ScreenW = a.width
	cfg.ScreenH = a.height
	m := NewModel(game, a.env, cfg)
	a.level = &m
	a.view = viewLevel
	return m.Init()
}

// Init runs the command of the first screen.
func (a App) Init() tea.Cmd {
	return a.initCmd
}

// Update handles messages for the current screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	switch a.view {
	case viewLevel:
		return a.updateLevel(msg)
	case viewTreasure:
		return a.updateTreasure(msg)
	case viewProgress:
		return a.updateProgress(msg)
	default:
		return a.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := a.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		a.menu = menuModel
	}

	if a.menu.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if selected := a.menu.Selected(); selected != nil {
		return a, a.open(selected.Route)
	}

	return a, cmd
}

// updateLevel handles updates while a level runs.
func (a App) updateLevel(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.level.Update(msg)
	if levelModel, ok := newModel.(Model); ok {
		a.level = &levelModel
	}

	if a.level.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if next := a.level.Next(); next != "" {
		return a, a.open(next)
	}

	return a, cmd
}

func (a App) updateTreasure(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.treasure.Update(msg)
	if t, ok := newModel.(TreasureModel); ok {
		a.treasure = t
	}

	if a.treasure.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.treasure.IsGoingBack() {
		return a, a.open(registry.RouteMenu)
	}
	return a, cmd
}

func (a App) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := a.stats.Update(msg)
	if p, ok := newModel.(ProgressModel); ok {
		a.stats = p
	}

	if a.stats.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.stats.IsGoingBack() {
		return a, a.open(registry.RouteMenu)
	}
	return a, cmd
}

// View renders the current screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewLevel:
		return a.level.View()
	case viewTreasure:
		return a.treasure.View()
	case viewProgress:
		return a.stats.View()
	default:
		return a.menu.View()
	}
}

// Route returns the route of the screen on display.
func (a App) Route() string {
	switch a.view {
	case viewLevel:
		return a.level.game.ID()
	case viewTreasure:
		return registry.RouteTreasure
	case viewProgress:
		return routeProgress
	default:
		return registry.RouteMenu
	}
}

// Run starts the campaign at route in the alternate screen.
func Run(env *Env, route string) error {
	p := tea.NewProgram(
		NewApp(env, route),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	env.sound().Stop()
	return err
}
