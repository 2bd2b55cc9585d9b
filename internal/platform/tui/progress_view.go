package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/progress"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
	"github.com/vovakirdan/love-no-jutsu/internal/storage"
)

// Progress view layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show the summary sidebar
	sidebarWidth       = 26
	maxHistory         = 100
)

// progressTab selects what the table shows.
type progressTab int

const (
	tabLevels progressTab = iota
	tabHistory
)

func (t progressTab) String() string {
	if t == tabHistory {
		return "History"
	}
	return "Levels"
}

// ProgressKeyMap defines the key bindings for the progress view.
type ProgressKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Tab  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "levels/history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel shows the campaign state and the level result history.
type ProgressModel struct {
	env         *Env
	tab         progressTab
	stats       map[int]*storage.LevelStats
	history     []storage.LevelResult
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
	standalone  bool // Back exits the program
}

// NewProgressModel creates the progress view and loads the history.
func NewProgressModel(env *Env, width, height int) ProgressModel {
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		env:         env,
		keys:        DefaultProgressKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads the history. Without a history store the tables stay empty.
func (m *ProgressModel) load() {
	if m.env.History == nil {
		return
	}
	stats, err := m.env.History.GetAllLevelStats()
	if err != nil {
		m.env.logger().Warn("cannot load level stats", "error", err)
	} else {
		m.stats = stats
	}
	history, err := m.env.History.RecentResults(maxHistory)
	if err != nil {
		m.env.logger().Warn("cannot load level history", "error", err)
	} else {
		m.history = history
	}
}

func (m *ProgressModel) columns() []table.Column {
	if m.tab == tabHistory {
		return []table.Column{
			{Title: "When", Width: 13},
			{Title: "Level", Width: 16},
			{Title: "Result", Width: 7},
			{Title: "XP", Width: 5},
			{Title: "Moves", Width: 6},
			{Title: "Acc", Width: 5},
			{Title: "Time", Width: 5},
		}
	}
	return []table.Column{
		{Title: "Level", Width: 18},
		{Title: "Status", Width: 8},
		{Title: "Plays", Width: 6},
		{Title: "Wins", Width: 5},
		{Title: "Best XP", Width: 8},
		{Title: "Last played", Width: 13},
	}
}

// createTable creates a table for the current tab.
func (m *ProgressModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("162")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func levelTitle(level int) string {
	for _, g := range registry.Levels() {
		if g.Level == level {
			return fmt.Sprintf("%d. %s", level, g.Title)
		}
	}
	return fmt.Sprintf("Level %d", level)
}

// updateTableRows fills the table for the current tab.
func (m *ProgressModel) updateTableRows() {
	var rows []table.Row
	if m.tab == tabHistory {
		rows = make([]table.Row, len(m.history))
		for i, r := range m.history {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				levelTitle(r.Level),
				r.Outcome,
				fmt.Sprintf("%d", r.XPEarned),
				fmt.Sprintf("%d", r.Moves),
				fmt.Sprintf("%d%%", r.Accuracy),
				fmt.Sprintf("%ds", r.DurationSecs),
			}
		}
	} else {
		for _, g := range registry.Levels() {
			status := "locked"
			switch {
			case m.env.Progress.IsLevelCompleted(g.Level):
				status = "done"
			case m.env.Progress.IsLevelUnlocked(g.Level):
				status = "open"
			}
			row := table.Row{levelTitle(g.Level), status, "0", "0", "-", "-"}
			if st, ok := m.stats[g.Level]; ok {
				row[2] = fmt.Sprintf("%d", st.Plays)
				row[3] = fmt.Sprintf("%d", st.Wins)
				if st.Wins > 0 {
					row[4] = fmt.Sprintf("%d", st.BestXP)
				}
				if !st.LastPlayed.IsZero() {
					row[5] = st.LastPlayed.Format("Jan 02 15:04")
				}
			}
			rows = append(rows, row)
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress view.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			if m.tab == tabLevels {
				m.tab = tabHistory
			} else {
				m.tab = tabLevels
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress view.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("PROGRESS - "+m.tab.String(), m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary lists the persisted campaign state.
func (m ProgressModel) summary() []string {
	st := m.env.Progress.Snapshot()
	lines := []string{
		fmt.Sprintf("XP        %d/%d", st.XP, progress.MaxXP),
		fmt.Sprintf("Scrolls   %d/%d", st.ScrollFragments, progress.MaxFragments),
		fmt.Sprintf("Completed %d", len(st.CompletedLevels)),
		fmt.Sprintf("Current   %d", st.CurrentLevel),
	}
	if len(st.Clues) > 0 {
		lines = append(lines, "", "Clues")
		for _, c := range st.Clues {
			lines = append(lines, "· "+c)
		}
	}
	return lines
}

// renderWideLayout renders the summary sidebar next to the table.
func (m ProgressModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Campaign\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	sidebar.WriteString(strings.Join(m.summary(), "\n"))

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders a one-line summary above the table.
func (m ProgressModel) renderNarrowLayout() string {
	var b strings.Builder

	st := m.env.Progress.Snapshot()
	line := fmt.Sprintf("XP %d/%d  Scrolls %d/%d  Clues %d",
		st.XP, progress.MaxXP, st.ScrollFragments, progress.MaxFragments, len(st.Clues))
	b.WriteString(subtleStyle.Render(centerText(line, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ProgressModel) renderTableContent() string {
	if m.tab == tabHistory && len(m.history) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No attempts recorded yet.\nFinish a level to start the history!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}

// RunProgress shows the progress view as its own program.
func RunProgress(env *Env, width, height int) error {
	m := NewProgressModel(env, width, height)
	m.standalone = true

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
