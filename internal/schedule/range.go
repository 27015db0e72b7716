// Package schedule turns a flat list of events into renderable
// calendar structure: visible day ranges per view, per-day buckets,
// positioned day entries, and overlap-free display columns.
package schedule

import (
	"fmt"
	"time"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
)

// View selects the calendar granularity.
type View int

const (
	ViewMonth View = iota
	ViewWeek
	ViewDay
)

func (v View) String() string {
	switch v {
	case ViewMonth:
		return "month"
	case ViewWeek:
		return "week"
	case ViewDay:
		return "day"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView maps a config/flag string to a View.
func ParseView(s string) (View, error) {
	switch s {
	case "month":
		return ViewMonth, nil
	case "week":
		return ViewWeek, nil
	case "day":
		return ViewDay, nil
	default:
		return ViewMonth, fmt.Errorf("unknown view %q", s)
	}
}

// Range is a visible day span plus the exact span used for header
// labels, both as Julian day numbers with exclusive ends. For month
// view the visible span is padded to whole Monday-first weeks; for
// week and day views the two spans coincide.
type Range struct {
	Start      int
	End        int
	LabelStart int
	LabelEnd   int
}

// Days enumerates the visible dates in order.
func (r Range) Days() []civil.Date {
	days := make([]civil.Date, 0, r.End-r.Start)
	for j := r.Start; j < r.End; j++ {
		days = append(days, civil.FromJulian(j))
	}
	return days
}

// Len returns the number of visible days.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether the Julian day is visible.
func (r Range) Contains(jdn int) bool {
	return jdn >= r.Start && jdn < r.End
}

// Compute returns the visible and label ranges for a view anchored at
// the reference date. An unknown view is a programming error and
// panics.
func Compute(view View, ref civil.Date) Range {
	switch view {
	case ViewMonth:
		first := civil.Date{Year: ref.Year, Month: ref.Month, Day: 1}
		start := first.Julian() - first.WeekdayIndex()
		return Range{
			Start:      start,
			End:        start + 42, // always six whole weeks
			LabelStart: first.Julian(),
			LabelEnd:   first.Julian() + civil.DaysInMonth(ref.Year, ref.Month),
		}
	case ViewWeek:
		start := ref.Julian() - ref.WeekdayIndex()
		return Range{Start: start, End: start + 7, LabelStart: start, LabelEnd: start + 7}
	case ViewDay:
		j := ref.Julian()
		return Range{Start: j, End: j + 1, LabelStart: j, LabelEnd: j + 1}
	default:
		panic(fmt.Sprintf("schedule: unknown view %d", int(view)))
	}
}

// Advance moves the reference date one step in the given direction
// (+1 or -1). Month steps keep the day of month where possible,
// clamping to the last day of the target month.
func Advance(view View, ref civil.Date, direction int) civil.Date {
	switch view {
	case ViewMonth:
		year, month := ref.Year, int(ref.Month)+direction
		for month < 1 {
			month += 12
			year--
		}
		for month > 12 {
			month -= 12
			year++
		}
		day := ref.Day
		if max := civil.DaysInMonth(year, time.Month(month)); day > max {
			day = max
		}
		return civil.Date{Year: year, Month: time.Month(month), Day: day}
	case ViewWeek:
		return ref.AddDays(7 * direction)
	case ViewDay:
		return ref.AddDays(direction)
	default:
		panic(fmt.Sprintf("schedule: unknown view %d", int(view)))
	}
}

// Pad widens a range symmetrically by its own visible length, so that
// a single navigation step stays inside the already fetched window.
func Pad(r Range) Range {
	n := r.Len()
	return Range{
		Start:      r.Start - n,
		End:        r.End + n,
		LabelStart: r.LabelStart,
		LabelEnd:   r.LabelEnd,
	}
}
