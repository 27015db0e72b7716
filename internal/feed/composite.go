package feed

import (
	"errors"
	"sync"
	"time"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/log"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/orderedset"
)

// Composite merges several sources (e.g. a sessions feed and a
// variants feed) into one, de-duplicating by event ID while keeping
// source order.
type Composite struct {
	mu      sync.Mutex
	sources []Source
	changes chan Change
	stops   []chan struct{}
}

func NewComposite(sources ...Source) *Composite {
	return &Composite{
		sources: sources,
		changes: make(chan Change, 10),
	}
}

// Events implements Source. A failing source is logged and skipped so
// one broken feed does not blank the whole calendar.
func (c *Composite) Events(start, end time.Time) ([]event.Event, error) {
	c.mu.Lock()
	sources := append([]Source(nil), c.sources...)
	c.mu.Unlock()

	seen := orderedset.New[string]()
	var merged []event.Event
	var failures int

	for _, src := range sources {
		events, err := src.Events(start, end)
		if err != nil {
			log.Error("feed source failed", err)
			failures++
			continue
		}
		for _, ev := range events {
			if seen.Add(ev.ID) {
				merged = append(merged, ev)
			}
		}
	}

	if failures == len(sources) && failures > 0 {
		return nil, errors.New("all feed sources failed")
	}
	event.SortByStart(merged)
	return merged, nil
}

// Watch implements Source, forwarding changes from every source that
// supports watching.
func (c *Composite) Watch() (<-chan Change, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, src := range c.sources {
		ch, err := src.Watch()
		if err != nil || ch == nil {
			continue
		}

		stop := make(chan struct{})
		c.stops = append(c.stops, stop)
		go func(ch <-chan Change, stop chan struct{}) {
			for {
				select {
				case change, ok := <-ch:
					if !ok {
						return
					}
					select {
					case c.changes <- change:
					default:
					}
				case <-stop:
					return
				}
			}
		}(ch, stop)
	}

	return c.changes, nil
}

// Close implements Source.
func (c *Composite) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, stop := range c.stops {
		close(stop)
	}
	c.stops = nil

	var err error
	for _, src := range c.sources {
		if cerr := src.Close(); cerr != nil {
			err = cerr
		}
	}
	return err
}
