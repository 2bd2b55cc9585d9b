package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/love-no-jutsu/internal/progress"
)

// TreasureModel is the ending screen: the recovered scroll and every clue
// collected on the way.
type TreasureModel struct {
	env       *Env
	width     int
	keyMapper *KeyMapper
	back      bool
	quitting  bool
}

// NewTreasureModel creates the ending screen.
func NewTreasureModel(env *Env, width int) TreasureModel {
	return TreasureModel{env: env, width: width, keyMapper: NewKeyMapper()}
}

// Init initializes the treasure model.
func (m TreasureModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the treasure screen.
func (m TreasureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.back = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the clue log.
func (m TreasureModel) View() string {
	if m.quitting {
		return ""
	}

	st := m.env.Progress.Snapshot()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("T H E   T R E A S U R E", m.width)))
	b.WriteString("\n\n")

	if st.ScrollFragments >= progress.MaxFragments {
		b.WriteString(centerText("All seven scroll fragments are whole again.", m.width))
	} else {
		b.WriteString(centerText(fmt.Sprintf("%d of %d scroll fragments recovered.", st.ScrollFragments, progress.MaxFragments), m.width))
	}
	b.WriteString("\n\n")

	if len(st.Clues) == 0 {
		b.WriteString(subtleStyle.Render(centerText("No clues yet.", m.width)))
		b.WriteString("\n")
	}
	for i, clue := range st.Clues {
		b.WriteString(clueStyle.Render(centerText(fmt.Sprintf("%d. %s", i+1, clue), m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(centerText(fmt.Sprintf("XP %d/%d", st.XP, progress.MaxXP), m.width)))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(centerText("Enter/Esc: Menu  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// IsGoingBack returns true if the player wants the menu.
func (m TreasureModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if the player wants to exit.
func (m TreasureModel) IsQuitting() bool {
	return m.quitting
}
