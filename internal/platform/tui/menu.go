package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/love-no-jutsu/internal/audio"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
)

// routeProgress opens the progress view. It is a platform screen, not a level.
const routeProgress = "progress"

// MenuItem is one entry of the campaign menu.
type MenuItem struct {
	Route string
	Title string
	Level int // 0 for entries outside the campaign
}

// MenuModel is the Bubble Tea model for the campaign menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	env       *Env
	keyMapper *KeyMapper
	notice    string
	muted     bool
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates the menu for the player's current progress.
// The cursor starts on the highest unlocked level.
func NewMenuModel(env *Env, width, height int) MenuModel {
	items := menuItems(env.Progress)

	cursor := 0
	current := env.Progress.CurrentLevel()
	for i, item := range items {
		if item.Level > 0 && item.Level <= current {
			cursor = i
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     width,
		height:    height,
		env:       env,
		keyMapper: NewKeyMapper(),
	}
}

// menuItems lists every level, then the quiz, the progress view and,
// once the last level is done, the treasure.
func menuItems(store *progress.Store) []MenuItem {
	levels := registry.Levels()
	items := make([]MenuItem, 0, len(levels)+3)
	for _, g := range levels {
		items = append(items, MenuItem{Route: g.ID, Title: g.Title, Level: g.Level})
	}
	if registry.Exists(registry.RouteQuiz) {
		items = append(items, MenuItem{Route: registry.RouteQuiz, Title: "Quiz"})
	}
	items = append(items, MenuItem{Route: routeProgress, Title: "Progress"})
	if len(levels) > 0 && store.IsLevelCompleted(levels[len(levels)-1].Level) {
		items = append(items, MenuItem{Route: registry.RouteTreasure, Title: "Treasure"})
	}
	return items
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.notice = ""

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.notice = ""

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if item.Level > 0 && !m.env.Progress.IsLevelUnlocked(item.Level) {
			m.notice = fmt.Sprintf("Complete level %d to unlock %s.", item.Level-1, item.Title)
			return m, nil
		}
		m.selected = &item

	case MenuActionMute:
		m.muted = !m.muted
		if m.muted {
			m.env.sound().SetVolume(0)
		} else {
			m.env.sound().SetVolume(audio.DefaultVolume)
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	st := m.env.Progress.Snapshot()

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("L O V E   N O   J U T S U", m.width)))
	b.WriteString("\n\n")
	stats := fmt.Sprintf("XP %d/%d   Scrolls %d/%d", st.XP, progress.MaxXP, st.ScrollFragments, progress.MaxFragments)
	b.WriteString(subtleStyle.Render(centerText(stats, m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		style := lipgloss.NewStyle()
		label := item.Title
		if item.Level > 0 {
			mark := "○"
			switch {
			case m.env.Progress.IsLevelCompleted(item.Level):
				mark = "✓"
				style = doneStyle
			case !m.env.Progress.IsLevelUnlocked(item.Level):
				mark = "·"
				style = lockedStyle
			}
			label = fmt.Sprintf("%s %d. %s", mark, item.Level, item.Title)
		}
		if i == m.cursor {
			style = activeStyle
		}

		b.WriteString(style.Render(centerText(cursor+label, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(clueStyle.Render(centerText(m.notice, m.width)))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter: Select  |  M: Mute  |  Q: Quit"
	b.WriteString(subtleStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
