package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/log"
)

// document is the on-disk feed shape: one file carries both sessions
// and product-availability variants.
type document struct {
	Sessions []sessionJSON `json:"sessions"`
	Variants []variantJSON `json:"variants"`
}

type sessionJSON struct {
	ID       string   `json:"id"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Title    string   `json:"title"`
	Trainers []string `json:"trainers,omitempty"`
	Rooms    []string `json:"rooms,omitempty"`
	Units    []string `json:"units,omitempty"`
}

type variantJSON struct {
	ID          string `json:"id"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Title       string `json:"title"`
	ProductCode string `json:"product_code"`
	Location    string `json:"location,omitempty"`
	Status      string `json:"status,omitempty"`
}

// FileSource reads one or more JSON feed files. Events with
// unparsable instants are dropped and logged, never fatal: the
// calendar must render with partially bad data.
type FileSource struct {
	mu      sync.RWMutex
	paths   []string
	watcher *watcher
}

func NewFileSource(paths ...string) *FileSource {
	return &FileSource{paths: paths}
}

// SetPaths replaces the backing feed files.
func (s *FileSource) SetPaths(paths []string) {
	s.mu.Lock()
	s.paths = paths
	s.mu.Unlock()
}

// Events implements Source.
func (s *FileSource) Events(start, end time.Time) ([]event.Event, error) {
	s.mu.RLock()
	paths := append([]string(nil), s.paths...)
	s.mu.RUnlock()

	var all []event.Event
	for _, path := range paths {
		events, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, events...)
	}

	filtered := all[:0]
	for _, ev := range all {
		if intersects(ev, start, end) {
			filtered = append(filtered, ev)
		}
	}
	event.SortByStart(filtered)
	return filtered, nil
}

func loadFile(path string) ([]event.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feed %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a feed document, dropping malformed entries.
func Parse(data []byte, origin string) ([]event.Event, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding feed %s: %w", origin, err)
	}

	events := make([]event.Event, 0, len(doc.Sessions)+len(doc.Variants))

	for _, s := range doc.Sessions {
		start, end, ok := parseSpan(origin, s.ID, s.Start, s.End)
		if !ok {
			continue
		}
		events = append(events, event.Event{
			ID:       s.ID,
			Kind:     event.KindSession,
			Start:    start,
			End:      end,
			Title:    s.Title,
			Trainers: s.Trainers,
			Rooms:    s.Rooms,
			Units:    s.Units,
		}.Normalize())
	}

	for _, v := range doc.Variants {
		start, end, ok := parseSpan(origin, v.ID, v.Start, v.End)
		if !ok {
			continue
		}
		events = append(events, event.Event{
			ID:          v.ID,
			Kind:        event.KindVariant,
			Start:       start,
			End:         end,
			Title:       v.Title,
			ProductCode: v.ProductCode,
			Location:    v.Location,
			Status:      v.Status,
		}.Normalize())
	}

	return events, nil
}

func parseSpan(origin, id, startStr, endStr string) (start, end time.Time, ok bool) {
	start, err := event.ParseInstant(startStr)
	if err != nil {
		log.Warn("dropping malformed event", "feed", origin, "id", id, "start", startStr)
		return time.Time{}, time.Time{}, false
	}
	end, err = event.ParseInstant(endStr)
	if err != nil {
		log.Warn("dropping malformed event", "feed", origin, "id", id, "end", endStr)
		return time.Time{}, time.Time{}, false
	}
	// Inverted spans pass through: the schedule layer widens them.
	return start, end, true
}

// intersects matches the [start, end) contract of Source.Events: both
// ends exclusive-aware, so an event ending exactly at the window start
// is outside it. Degenerate spans count as an instant at their start.
func intersects(ev event.Event, start, end time.Time) bool {
	if !ev.End.After(ev.Start) {
		return !ev.Start.Before(start) && ev.Start.Before(end)
	}
	return ev.Start.Before(end) && ev.End.After(start)
}

// Watch implements Source using an fsnotify watcher over the feed
// files.
func (s *FileSource) Watch() (<-chan Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		return s.watcher.changes, nil
	}
	w, err := newWatcher(s.paths)
	if err != nil {
		return nil, err
	}
	s.watcher = w
	return w.changes, nil
}

// Close implements Source.
func (s *FileSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		return nil
	}
	err := s.watcher.close()
	s.watcher = nil
	return err
}
