package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/schedule"
)

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// viewMonth renders the 6x7 month grid with a few events per cell.
func (m *Model) viewMonth() string {
	r := schedule.Compute(schedule.ViewMonth, m.refDate)
	cells := schedule.MonthCells(r, m.indexer.BucketByDay(m.events), m.today)

	cellWidth := (m.width - 1) / 7
	if cellWidth < 10 {
		cellWidth = 10
	}
	linesPerCell := m.config.MaxMonthEvents + 1

	var lines []string

	header := fmt.Sprintf("%s %d", m.refDate.Month, m.refDate.Year)
	lines = append(lines, m.styles.Header.Render(header))

	var dayHeader strings.Builder
	for _, name := range weekdayNames {
		dayHeader.WriteString(pad(name, cellWidth))
	}
	lines = append(lines, m.styles.Help.Render(dayHeader.String()))

	for week := 0; week < 6; week++ {
		row := cells[week*7 : week*7+7]
		for line := 0; line < linesPerCell; line++ {
			var sb strings.Builder
			for _, cell := range row {
				sb.WriteString(m.renderMonthCellLine(cell, line, cellWidth))
			}
			lines = append(lines, sb.String())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderMonthCellLine(cell schedule.MonthCell, line, width int) string {
	if line == 0 {
		label := fmt.Sprintf("%2d", cell.Date.Day)
		if extra := len(cell.Events) - m.config.MaxMonthEvents; extra > 0 {
			label += fmt.Sprintf(" (+%d)", extra)
		}

		style := m.styles.Normal
		switch {
		case cell.Today:
			style = m.styles.Today
		case !cell.InMonth:
			style = m.styles.Dim
		case cell.Date == m.refDate:
			style = m.styles.Selected
		case cell.Date.WeekdayIndex() >= 5:
			style = m.styles.Weekend
		}
		return style.Render(pad(label, width))
	}

	idx := line - 1
	if idx >= len(cell.Events) || idx >= m.config.MaxMonthEvents {
		return pad("", width)
	}

	ev := cell.Events[idx]
	label := m.monthEventLabel(ev, cell.Date, width-1)
	return m.eventStyle(ev).Render(pad(label, width))
}

// monthEventLabel prefixes the local start time, or a marker when the
// event started on an earlier day.
func (m *Model) monthEventLabel(ev event.Event, day civil.Date, width int) string {
	start := m.clock.ToCivil(ev.Start)
	label := ""
	if start.Date == day {
		label = fmt.Sprintf("%02d:%02d ", start.Hour, start.Minute)
	} else {
		label = "« "
	}
	label += ev.Title
	return truncate(label, width)
}

func (m *Model) eventStyle(ev event.Event) lipgloss.Style {
	switch ev.Kind {
	case event.KindVariant:
		return m.styles.Variant
	default:
		return m.styles.Session
	}
}

// pad right-pads or truncates s to exactly width cells, counted in
// runes so accented titles do not shift grid columns.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
