// Package feed loads calendar events from exported JSON feed files
// and reports changes to them. It owns no network access: feeds are
// produced by the surrounding ERP and dropped on disk.
package feed

import (
	"time"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
)

// Source provides events for a UTC instant range.
type Source interface {
	// Events returns the events intersecting [start, end).
	Events(start, end time.Time) ([]event.Event, error)
	// Watch returns a channel that reports changes to the backing
	// files, or nil when watching is not supported.
	Watch() (<-chan Change, error)
	// Close releases any watch resources.
	Close() error
}

// Change is a modification of a backing feed file.
type Change struct {
	Path      string
	Timestamp time.Time
}
