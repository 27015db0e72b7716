package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderStatusBar() string {
	if m.prompt != promptNone {
		label := "Search"
		if m.prompt == promptGoto {
			label = "Go to"
		}
		return m.styles.Message.Render(fmt.Sprintf("%s: %s█", label, m.promptInput))
	}

	var left strings.Builder
	left.WriteString(fmt.Sprintf("%s %d, %d", m.refDate.Month, m.refDate.Day, m.refDate.Year))
	if m.query != "" {
		left.WriteString(fmt.Sprintf("  /%s (%d of %d)", m.query, len(m.events), len(m.loaded)))
	} else if m.hasLoaded {
		left.WriteString(fmt.Sprintf("  %d events", len(m.events)))
	}
	if m.message != "" {
		left.WriteString("  " + m.message)
	}

	right := "m/w/d views · t today · / search · ? help · q quit"

	gap := m.width - len(left.String()) - len(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.Help.Render(left.String() + strings.Repeat(" ", gap) + right)
}

func (m *Model) viewHelp() string {
	rows := []struct{ key, desc string }{
		{"m / w / d", "month, week or day view"},
		{"h / l, ← / →", "previous or next period"},
		{"j / k, ↓ / ↑", "move a week at a time"},
		{"t", "jump to today"},
		{"g", "go to a date (2024-06-15, 15/6, +2w, mañana)"},
		{"/", "fuzzy search, narrows as you type"},
		{"esc", "clear the active search"},
		{"r", "reload feed files"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var lines []string
	lines = append(lines, m.styles.Header.Render("gepcal keys"), "")
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %s %s",
			m.styles.Selected.Render(pad(row.key, 14)),
			row.desc))
	}
	lines = append(lines, "", m.styles.Help.Render("Press ? to close"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
