package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/health-vault/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const appName = "HealthVault"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

type navItem struct {
	route models.Route
	label string
}

// navItems lists the header navigation of role.
func navItems(role models.Role) []navItem {
	items := []navItem{
		{models.DashboardRoute(role), "Dashboard"},
		{models.AppointmentsRoute(role), "Appointments"},
	}
	if role == models.RolePatient {
		items = append(items, navItem{models.RouteFindDoctor, "Find doctor"})
	}
	return append(items, navItem{models.RouteProfile, "Profile"})
}

// renderHeader is the navigation bar: the app name, the greeting and the
// role's navigation items with the active one highlighted.
func renderHeader(user *models.User, active models.Route) string {
	if user == nil {
		return appName + "  " + helpStyle.Render("not signed in")
	}

	first, _, _ := strings.Cut(user.Name, " ")

	nav := make([]string, 0, 4)
	for _, it := range navItems(user.Role) {
		if it.route == active {
			nav = append(nav, activeBadge.Render(it.label))
		} else {
			nav = append(nav, badgeStyle.Render(it.label))
		}
	}

	return fmt.Sprintf("%s  Welcome, %s (%s)\n%s", appName, first, user.Role, strings.Join(nav, " "))
}

// renderNotice renders a status line, red for errors.
func renderNotice(text string, isErr bool) string {
	if text == "" {
		return ""
	}
	if isErr {
		return errorStyle.Render("Error: " + text)
	}
	return okStyle.Render(text)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
