package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	badgeStyle      = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("236"))
	activeBadge     = badgeStyle.Background(lipgloss.Color("28")).Foreground(lipgloss.Color("231"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
