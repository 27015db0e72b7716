// Package event defines the calendar events handled by the engine:
// training sessions and product-availability variants, both carried as
// UTC spans with denormalized display fields.
package event

import (
	"sort"
	"time"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/orderedset"
)

// Kind discriminates the two event variants. Every consumer switches
// exhaustively on it.
type Kind int

const (
	KindSession Kind = iota
	KindVariant
)

func (k Kind) String() string {
	switch k {
	case KindSession:
		return "session"
	case KindVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// Event is a kind-discriminated union of a session and a variant.
// Start and End are UTC instants, End exclusive. End > Start is not
// guaranteed by upstream data; the schedule layer clamps degenerate
// spans instead of rejecting them.
type Event struct {
	ID    string
	Kind  Kind
	Start time.Time
	End   time.Time
	Title string

	// Session fields.
	Trainers []string
	Rooms    []string
	Units    []string

	// Variant fields.
	ProductCode string
	Location    string
	Status      string
}

// Duration returns the span length, zero for inverted spans.
func (e Event) Duration() time.Duration {
	if e.End.Before(e.Start) {
		return 0
	}
	return e.End.Sub(e.Start)
}

// Normalize de-duplicates the resource lists, keeping first-seen
// order, and returns the event with UTC-normalized instants.
func (e Event) Normalize() Event {
	e.Start = e.Start.UTC()
	e.End = e.End.UTC()
	e.Trainers = orderedset.Dedup(e.Trainers)
	e.Rooms = orderedset.Dedup(e.Rooms)
	e.Units = orderedset.Dedup(e.Units)
	return e
}

// SortByStart orders events by start instant, then end, then ID so
// that equal-start events render deterministically.
func SortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.ID < b.ID
	})
}
