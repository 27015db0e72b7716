package search

import (
	"sort"
	"strings"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
)

// Facet keys exposed for exact filtering. Filters on any other key
// are no-ops: facet definitions and feed data evolve independently,
// so an unknown key must never exclude everything.
const (
	FacetKind     = "kind"
	FacetTitle    = "title"
	FacetTrainer  = "trainer"
	FacetRoom     = "room"
	FacetUnit     = "unit"
	FacetProduct  = "product"
	FacetLocation = "location"
	FacetStatus   = "status"
)

// OrSeparator delimits alternative values within one facet filter.
const OrSeparator = "|"

// Row is the per-event search projection: normalized facet fields
// plus one concatenated blob for free-text matching. Rows are rebuilt
// whenever the event set changes and never mutated in place.
type Row struct {
	Event  event.Event
	Facets map[string]string
	Blob   string
}

// BuildRows projects events into filterable rows.
func BuildRows(events []event.Event) []Row {
	rows := make([]Row, 0, len(events))
	for _, ev := range events {
		rows = append(rows, buildRow(ev))
	}
	return rows
}

func buildRow(ev event.Event) Row {
	facets := map[string]string{
		FacetKind:  ev.Kind.String(),
		FacetTitle: Normalize(ev.Title),
	}

	switch ev.Kind {
	case event.KindSession:
		facets[FacetTrainer] = Normalize(strings.Join(ev.Trainers, " "))
		facets[FacetRoom] = Normalize(strings.Join(ev.Rooms, " "))
		facets[FacetUnit] = Normalize(strings.Join(ev.Units, " "))
	case event.KindVariant:
		facets[FacetProduct] = Normalize(ev.ProductCode)
		facets[FacetLocation] = Normalize(ev.Location)
		facets[FacetStatus] = Normalize(ev.Status)
	}

	var blob []string
	blob = append(blob, facets[FacetTitle])
	for _, key := range []string{FacetTrainer, FacetRoom, FacetUnit, FacetProduct, FacetLocation, FacetStatus} {
		if v := facets[key]; v != "" {
			blob = append(blob, v)
		}
	}

	return Row{Event: ev, Facets: facets, Blob: strings.Join(blob, " ")}
}

// Facets maps facet keys to a required value list, joined by
// OrSeparator. A row passes a facet when its normalized field
// contains at least one of the alternatives as a substring.
type Facets map[string]string

// Filter applies the facet filters and then the free-text query,
// returning the surviving events ordered by ascending fuzzy score.
// Ties keep their input order.
func Filter(rows []Row, facets Facets, query string) []event.Event {
	type scored struct {
		ev    event.Event
		score int
	}

	tokens := strings.Fields(Normalize(query))

	var out []scored
rowLoop:
	for _, row := range rows {
		for key, want := range facets {
			if !passesFacet(row, key, want) {
				continue rowLoop
			}
		}

		score := 0
		for _, token := range tokens {
			gap, ok := subsequenceGap(row.Blob, token)
			if !ok {
				continue rowLoop
			}
			score += gap
		}
		out = append(out, scored{ev: row.Event, score: score})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].score < out[j].score })

	events := make([]event.Event, len(out))
	for i, s := range out {
		events[i] = s.ev
	}
	return events
}

func passesFacet(row Row, key, want string) bool {
	field, known := row.Facets[key]
	if !known || strings.TrimSpace(want) == "" {
		return true
	}
	required := false
	for _, alt := range strings.Split(want, OrSeparator) {
		alt = Normalize(alt)
		if alt == "" {
			continue
		}
		required = true
		if strings.Contains(field, alt) {
			return true
		}
	}
	// A filter whose alternatives all normalize away requires nothing.
	return !required
}

// subsequenceGap reports whether token occurs as an ordered (not
// necessarily contiguous) subsequence of blob, and the total number
// of characters skipped while matching greedily left to right. Lower
// gaps mean tighter matches.
func subsequenceGap(blob, token string) (int, bool) {
	gap := 0
	rest := blob
	for _, r := range token {
		i := strings.IndexRune(rest, r)
		if i < 0 {
			return 0, false
		}
		gap += i
		rest = rest[i+len(string(r)):]
	}
	return gap, true
}
