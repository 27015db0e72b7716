package schedule

import (
	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
)

// MonthCell is one cell of the month grid, ready to render.
type MonthCell struct {
	Date    civil.Date
	InMonth bool
	Today   bool
	Events  []event.Event
}

// DayColumn is one day of the week/day view with positioned entries.
type DayColumn struct {
	Date    civil.Date
	Today   bool
	Entries []Entry
}

// MonthCells assembles the ordered month-view cells for a range from
// prebuilt day buckets. Events within a cell are already start-sorted
// by BucketByDay.
func MonthCells(r Range, buckets map[int][]event.Event, today civil.Date) []MonthCell {
	todayJ := today.Julian()

	cells := make([]MonthCell, 0, r.Len())
	for j := r.Start; j < r.End; j++ {
		cells = append(cells, MonthCell{
			Date:    civil.FromJulian(j),
			InMonth: j >= r.LabelStart && j < r.LabelEnd,
			Today:   j == todayJ,
			Events:  buckets[j],
		})
	}
	return cells
}

// DayColumns lays out every visible day of a week/day range.
func (ix *Indexer) DayColumns(r Range, buckets map[int][]event.Event, today civil.Date) []DayColumn {
	todayJ := today.Julian()

	cols := make([]DayColumn, 0, r.Len())
	for j := r.Start; j < r.End; j++ {
		day := civil.FromJulian(j)
		cols = append(cols, DayColumn{
			Date:    day,
			Today:   j == todayJ,
			Entries: ix.Day(day, buckets[j]),
		})
	}
	return cols
}
