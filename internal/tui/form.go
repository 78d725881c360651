package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// form is a column of labelled text inputs with tab focus cycling.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(labels []string, inputs []textinput.Model) form {
	return form{labels: labels, inputs: inputs}
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) focusFirst() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = 0
	return f.inputs[0].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.focusFirst()
}

// update moves focus on tab / shift+tab and forwards other keys to the
// focused input.
func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		f.inputs[f.focus].Blur()
		f.focus = (f.focus + 1) % len(f.inputs)
		return f.inputs[f.focus].Focus()
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		f.inputs[f.focus].Blur()
		f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
		return f.inputs[f.focus].Focus()
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	labelWidth := lipgloss.Width("Field")
	for _, l := range f.labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Value\n", labelWidth, "Field"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, l := range f.labels {
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, l))
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
