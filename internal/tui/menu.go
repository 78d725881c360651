package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/health-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label  string
	action func() tea.Cmd
}

// menu is a vertical list of actions shared by the home page and the
// dashboards.
type menu struct {
	items []menuItem
	idx   int
}

func (m *menu) setItems(items []menuItem) {
	m.items = items
	if m.idx >= len(items) {
		m.idx = 0
	}
}

// update moves the cursor or runs the selected action. handled is false for
// keys the menu does not use.
func (m *menu) update(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return nil, true
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
		return nil, true
	case key.Matches(msg, keys.enter):
		if len(m.items) == 0 {
			return nil, true
		}
		return m.items[m.idx].action(), true
	}
	return nil, false
}

func (m *menu) view() string {
	var b strings.Builder

	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(m.items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2 // selection marker and a space

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		label := item.label
		if i == m.idx {
			cursor = ">"
			label = selectedStyle.Render(label)
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", idColWidth, idCell, label))
	}

	return strings.TrimRight(b.String(), "\n")
}

func navigate(route models.Route) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return NavigateTo{Route: route} }
	}
}
