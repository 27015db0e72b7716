package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/schedule"
)

const timeGutterWidth = 6

// viewTimeGrid renders the week and day views: a time gutter on the
// left and one positioned column per visible day, with overlapping
// events split into sub-columns.
func (m *Model) viewTimeGrid() string {
	r := schedule.Compute(m.view, m.refDate)
	cols := m.indexer.DayColumns(r, m.indexer.BucketByDay(m.events), m.today)

	gridRows := m.height - 5
	if gridRows < 12 {
		gridRows = 12
	}
	dayWidth := (m.width - timeGutterWidth) / len(cols)
	if dayWidth < 12 {
		dayWidth = 12
	}

	var lines []string
	lines = append(lines, m.styles.Header.Render(m.gridTitle(r)))
	lines = append(lines, m.renderDayHeaders(cols, dayWidth))
	lines = append(lines, m.renderGridCanvas(cols, gridRows, dayWidth)...)

	if m.view == schedule.ViewDay && len(cols) == 1 {
		lines = append(lines, "", m.renderDayDetails(cols[0]))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) gridTitle(r schedule.Range) string {
	first := civil.FromJulian(r.LabelStart)
	last := civil.FromJulian(r.LabelEnd - 1)
	if m.view == schedule.ViewDay {
		return fmt.Sprintf("%s, %s %d %d", weekdayNames[first.WeekdayIndex()], first.Month, first.Day, first.Year)
	}
	return fmt.Sprintf("%s %d – %s %d, %d", first.Month, first.Day, last.Month, last.Day, last.Year)
}

func (m *Model) renderDayHeaders(cols []schedule.DayColumn, dayWidth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", timeGutterWidth))

	var rendered []string
	rendered = append(rendered, sb.String())
	for _, col := range cols {
		label := fmt.Sprintf("%s %d", weekdayNames[col.Date.WeekdayIndex()], col.Date.Day)
		style := m.styles.Normal
		switch {
		case col.Today:
			style = m.styles.Today
		case col.Date.WeekdayIndex() >= 5:
			style = m.styles.Weekend
		}
		rendered = append(rendered, style.Render(pad(label, dayWidth)))
	}
	return strings.Join(rendered, "")
}

// renderGridCanvas paints entries into a rune canvas, one day per
// band, one sub-column per overlap column.
func (m *Model) renderGridCanvas(cols []schedule.DayColumn, gridRows, dayWidth int) []string {
	window := m.indexer.Window()
	totalWidth := timeGutterWidth + dayWidth*len(cols)

	canvas := make([][]rune, gridRows)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", totalWidth))
	}

	// Hour labels in the gutter.
	for hour := 0; hour <= 24; hour++ {
		minute := hour * 60
		if minute < window.StartMinute || minute >= window.EndMinute {
			continue
		}
		row := (minute - window.StartMinute) * gridRows / window.Minutes()
		if row >= gridRows {
			continue
		}
		writeString(canvas[row], 0, fmt.Sprintf("%02d:00", hour), timeGutterWidth)
	}

	for di, col := range cols {
		x0 := timeGutterWidth + di*dayWidth
		for _, e := range col.Entries {
			m.paintEntry(canvas, e, x0, dayWidth-1, gridRows)
		}
	}

	lines := make([]string, gridRows)
	for i, row := range canvas {
		lines[i] = m.styles.Normal.Render(string(row))
	}
	return lines
}

func (m *Model) paintEntry(canvas [][]rune, e schedule.Entry, x0, width, gridRows int) {
	sub := width / e.Columns
	if sub < 4 {
		sub = 4
	}
	x := x0 + e.Column*sub
	maxWidth := sub - 1
	if maxWidth < 3 {
		maxWidth = 3
	}

	startRow := int(e.Top * float64(gridRows) / 100)
	span := int(e.Height*float64(gridRows)/100 + 0.5)
	if span < 1 {
		span = 1
	}
	if startRow >= gridRows {
		startRow = gridRows - 1
	}
	endRow := startRow + span
	if endRow > gridRows {
		endRow = gridRows
	}

	start := m.clock.ToCivil(e.Event.Start)
	label := fmt.Sprintf("%02d:%02d %s", start.Hour, start.Minute, e.Event.Title)
	if e.ContinuesBefore {
		label = "↑ " + e.Event.Title
	}

	writeString(canvas[startRow], x, truncate(label, maxWidth), maxWidth)
	for row := startRow + 1; row < endRow; row++ {
		marker := "│"
		if row == endRow-1 && e.ContinuesAfter {
			marker = "↓"
		}
		writeString(canvas[row], x, marker, maxWidth)
	}
}

// writeString copies up to width runes of s into row at offset x.
func writeString(row []rune, x int, s string, width int) {
	for i, r := range []rune(s) {
		if i >= width || x+i >= len(row) {
			return
		}
		row[x+i] = r
	}
}

// renderDayDetails lists the day's entries with word-wrapped titles;
// shown under the grid in day view.
func (m *Model) renderDayDetails(col schedule.DayColumn) string {
	var lines []string
	lines = append(lines, m.styles.Header.Render("Events"))

	if len(col.Entries) == 0 {
		lines = append(lines, m.styles.Help.Render("(no events)"))
		return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	boxWidth := m.width - 4
	if boxWidth < 30 {
		boxWidth = 30
	}

	for i, e := range col.Entries {
		if i > 0 {
			lines = append(lines, "")
		}

		span := fmt.Sprintf("%s – %s", clockLabel(e.StartMinutes), clockLabel(e.EndMinutes))
		if e.ContinuesBefore {
			span = "… " + span
		}
		if e.ContinuesAfter {
			span += " …"
		}
		lines = append(lines, m.eventStyle(e.Event).Render(span))

		for _, line := range strings.Split(wordwrap.String(e.Event.Title, boxWidth), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}

		if detail := eventDetail(e.Event); detail != "" {
			lines = append(lines, m.styles.Help.Render(truncate(detail, boxWidth)))
		}
	}

	return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func eventDetail(ev event.Event) string {
	switch ev.Kind {
	case event.KindSession:
		var parts []string
		if len(ev.Trainers) > 0 {
			parts = append(parts, "Trainers: "+strings.Join(ev.Trainers, ", "))
		}
		if len(ev.Rooms) > 0 {
			parts = append(parts, "Rooms: "+strings.Join(ev.Rooms, ", "))
		}
		if len(ev.Units) > 0 {
			parts = append(parts, "Units: "+strings.Join(ev.Units, ", "))
		}
		return strings.Join(parts, "  ")
	case event.KindVariant:
		var parts []string
		if ev.ProductCode != "" {
			parts = append(parts, ev.ProductCode)
		}
		if ev.Location != "" {
			parts = append(parts, ev.Location)
		}
		if ev.Status != "" {
			parts = append(parts, ev.Status)
		}
		return strings.Join(parts, " · ")
	default:
		return ""
	}
}

func clockLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
