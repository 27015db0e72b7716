package schedule

import (
	"time"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
)

const (
	minutesPerDay = 24 * 60

	// Degenerate spans (end at or before start after clamping) are
	// widened to this visual length instead of being rejected, so the
	// grid stays renderable on bad upstream data.
	minSpanMinutes = 30

	// Shorter entries stay clickable by flooring their height.
	minHeightPercent = 2.0
)

// Window restricts the day viewport to a sub-range of the 24h day,
// in minutes from local midnight. The zero value is invalid; use
// FullDay or NewWindow.
type Window struct {
	StartMinute int
	EndMinute   int
}

// FullDay shows all 24 hours.
var FullDay = Window{StartMinute: 0, EndMinute: minutesPerDay}

// NewWindow clamps the given bounds into a usable window.
func NewWindow(startMinute, endMinute int) Window {
	if startMinute < 0 {
		startMinute = 0
	}
	if endMinute > minutesPerDay {
		endMinute = minutesPerDay
	}
	if endMinute <= startMinute {
		return FullDay
	}
	return Window{StartMinute: startMinute, EndMinute: endMinute}
}

func (w Window) Minutes() int {
	return w.EndMinute - w.StartMinute
}

// Entry is one event positioned within a single day column. Top and
// Height are percentages of the visible-hours window; Column and
// Columns place the entry among its time-overlapping neighbours.
type Entry struct {
	Event event.Event

	StartMinutes int
	EndMinutes   int

	ContinuesBefore bool
	ContinuesAfter  bool

	Top    float64
	Height float64

	Column  int
	Columns int
}

// Indexer buckets events into civil days and lays each day out.
type Indexer struct {
	clock  *civil.Clock
	window Window
}

func NewIndexer(clock *civil.Clock, window Window) *Indexer {
	return &Indexer{clock: clock, window: window}
}

func (ix *Indexer) Clock() *civil.Clock {
	return ix.clock
}

func (ix *Indexer) Window() Window {
	return ix.window
}

// BucketByDay maps each event to every civil day it touches, keyed by
// Julian day number. An event ending exactly at local midnight does
// not occupy the day it ends on.
func (ix *Indexer) BucketByDay(events []event.Event) map[int][]event.Event {
	buckets := make(map[int][]event.Event)

	for _, ev := range events {
		start := ix.clock.ToCivil(ev.Start)
		first := start.Date.Julian()
		last := first

		if ev.End.After(ev.Start) {
			end := ix.clock.ToCivil(ev.End)
			last = end.Date.Julian()
			if last > first && end.Hour == 0 && end.Minute == 0 {
				last--
			}
		}

		for j := first; j <= last; j++ {
			buckets[j] = append(buckets[j], ev)
		}
	}

	for _, evs := range buckets {
		event.SortByStart(evs)
	}
	return buckets
}

// Day lays out one day's events: clamps each span to the day, widens
// degenerate spans, clips to the visible-hours window, computes
// top/height percentages and assigns overlap columns. Events that end
// up entirely outside the window are dropped.
func (ix *Indexer) Day(day civil.Date, events []event.Event) []Entry {
	dayStart := ix.clock.DayStart(day)
	dayEnd := ix.clock.DayEnd(day)

	entries := make([]Entry, 0, len(events))
	for _, ev := range events {
		e, ok := ix.layout(ev, dayStart, dayEnd)
		if !ok {
			continue
		}
		entries = append(entries, e)
	}

	assignColumns(entries)
	return entries
}

// layout positions one event within [dayStart, dayEnd).
func (ix *Indexer) layout(ev event.Event, dayStart, dayEnd time.Time) (Entry, bool) {
	e := Entry{Event: ev}

	// A well-formed span that never reaches this day, including one
	// ending exactly at this day's local midnight, renders nothing.
	if ev.End.After(ev.Start) && !ev.End.After(dayStart) {
		return Entry{}, false
	}

	startMin := minutesInto(dayStart, ev.Start)
	endMin := minutesInto(dayStart, ev.End)

	if ev.Start.Before(dayStart) {
		startMin = 0
		e.ContinuesBefore = true
	}
	if ev.End.After(dayEnd) {
		endMin = minutesPerDay
		e.ContinuesAfter = true
	}
	if startMin < 0 || startMin >= minutesPerDay {
		// The event does not actually reach this day; tolerated so
		// callers can feed whole buckets without re-checking.
		return Entry{}, false
	}

	// Inverted or zero-length spans render as a minimum-length block.
	if endMin <= startMin {
		endMin = startMin + minSpanMinutes
		if endMin > minutesPerDay {
			endMin = minutesPerDay
			startMin = endMin - minSpanMinutes
		}
	}

	// Clip to the visible-hours window. Clipping sets the continuation
	// flags too, so the UI can mark truncation.
	w := ix.window
	if endMin <= w.StartMinute || startMin >= w.EndMinute {
		return Entry{}, false
	}
	if startMin < w.StartMinute {
		startMin = w.StartMinute
		e.ContinuesBefore = true
	}
	if endMin > w.EndMinute {
		endMin = w.EndMinute
		e.ContinuesAfter = true
	}

	e.StartMinutes = startMin
	e.EndMinutes = endMin

	span := float64(w.Minutes())
	e.Top = float64(startMin-w.StartMinute) / span * 100
	e.Height = float64(endMin-startMin) / span * 100
	if e.Height < minHeightPercent {
		e.Height = minHeightPercent
	}
	return e, true
}

// minutesInto returns the whole minutes from dayStart to t.
func minutesInto(dayStart, t time.Time) int {
	return int(t.Sub(dayStart) / time.Minute)
}
