package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
)

func session(id, title string, trainers ...string) event.Event {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return event.Event{
		ID:       id,
		Kind:     event.KindSession,
		Start:    start,
		End:      start.Add(time.Hour),
		Title:    title,
		Trainers: trainers,
	}
}

func variant(id, title, product, location, status string) event.Event {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return event.Event{
		ID:          id,
		Kind:        event.KindVariant,
		Start:       start,
		End:         start.Add(time.Hour),
		Title:       title,
		ProductCode: product,
		Location:    location,
		Status:      status,
	}
}

func ids(events []event.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "juan garcia", Normalize("  Juan   GARCÍA "))
	assert.Equal(t, "formacion basica", Normalize("Formación\tBásica"))
	assert.Equal(t, "", Normalize("   "))
}

func TestSubsequenceGap(t *testing.T) {
	// j..r..c appears in order within "juan garcia"; "xyz" does not.
	_, ok := subsequenceGap("juan garcia", "jrc")
	assert.True(t, ok)

	_, ok = subsequenceGap("juan garcia", "xyz")
	assert.False(t, ok)

	// A contiguous match consumes a smaller gap than a spread one.
	tight, ok := subsequenceGap("juan garcia", "juan")
	require.True(t, ok)
	spread, ok := subsequenceGap("juan garcia", "jnga")
	require.True(t, ok)
	assert.Less(t, tight, spread)
}

func TestFilterExcludesNonMatchingTokens(t *testing.T) {
	rows := BuildRows([]event.Event{
		session("s-1", "Trabajos en altura", "Juan García"),
		session("s-2", "Extinción de incendios", "Marta López"),
	})

	got := Filter(rows, nil, "jrc")
	assert.Equal(t, []string{"s-1"}, ids(got))

	got = Filter(rows, nil, "xyz")
	assert.Empty(t, got)

	// Every token must match: one good and one bad token excludes.
	got = Filter(rows, nil, "juan xyz")
	assert.Empty(t, got)
}

func TestFilterIsDiacriticInsensitive(t *testing.T) {
	rows := BuildRows([]event.Event{
		session("s-1", "Extinción de incendios", "José Martínez"),
	})

	assert.Equal(t, []string{"s-1"}, ids(Filter(rows, nil, "extincion")))
	assert.Equal(t, []string{"s-1"}, ids(Filter(rows, nil, "jose")))
}

func TestFilterOrdersByAscendingScore(t *testing.T) {
	rows := BuildRows([]event.Event{
		session("s-loose", "Plataformas elevadoras García"),
		session("s-tight", "García nivel 2"),
	})

	got := Filter(rows, nil, "garcia")
	require.Len(t, got, 2)
	// The blob starting with the token scores a smaller gap.
	assert.Equal(t, "s-tight", got[0].ID)
}

func TestFilterKeepsInsertionOrderOnTies(t *testing.T) {
	rows := BuildRows([]event.Event{
		session("s-1", "Formación inicial"),
		session("s-2", "Formación inicial"),
		session("s-3", "Formación inicial"),
	})

	got := Filter(rows, nil, "formacion")
	assert.Equal(t, []string{"s-1", "s-2", "s-3"}, ids(got))
}

func TestFilterFacets(t *testing.T) {
	rows := BuildRows([]event.Event{
		session("s-1", "Trabajos en altura", "Juan García"),
		session("s-2", "Trabajos en altura", "Marta López"),
		variant("v-1", "PCI avanzado", "PCI-200", "Madrid", "confirmada"),
		variant("v-2", "PCI básico", "PCI-100", "Sevilla", "anulada"),
	})

	t.Run("single value", func(t *testing.T) {
		got := Filter(rows, Facets{FacetTrainer: "garcía"}, "")
		// Variant rows carry no trainer facet and pass untouched.
		assert.Equal(t, []string{"s-1", "v-1", "v-2"}, ids(got))
	})

	t.Run("or within one facet", func(t *testing.T) {
		got := Filter(rows, Facets{FacetLocation: "madrid|sevilla"}, "")
		assert.Equal(t, []string{"s-1", "s-2", "v-1", "v-2"}, ids(got))

		got = Filter(rows, Facets{FacetLocation: "madrid"}, "")
		assert.Equal(t, []string{"s-1", "s-2", "v-1"}, ids(got))
	})

	t.Run("kind facet", func(t *testing.T) {
		got := Filter(rows, Facets{FacetKind: "variant"}, "")
		assert.Equal(t, []string{"v-1", "v-2"}, ids(got))
	})

	t.Run("unknown key is a no-op", func(t *testing.T) {
		got := Filter(rows, Facets{"instructor_level": "senior"}, "")
		assert.Len(t, got, 4)
	})

	t.Run("empty alternatives are a no-op", func(t *testing.T) {
		for _, want := range []string{"", "   ", "|", " | "} {
			got := Filter(rows, Facets{FacetLocation: want}, "")
			assert.Len(t, got, 4, "facet value %q must not exclude anything", want)
		}
	})

	t.Run("facets combine with free text", func(t *testing.T) {
		got := Filter(rows, Facets{FacetKind: "variant"}, "pci avanzado")
		assert.Equal(t, []string{"v-1"}, ids(got))
	})
}
