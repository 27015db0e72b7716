package event

import (
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		err   bool
	}{
		{
			name:  "rfc3339 utc",
			input: "2024-03-09T23:30:00Z",
			want:  time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC),
		},
		{
			name:  "explicit offset",
			input: "2024-03-10T00:30:00+01:00",
			want:  time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC),
		},
		{
			name:  "no offset treated as utc",
			input: "2024-03-09T23:30:00",
			want:  time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC),
		},
		{
			name:  "minute precision",
			input: "2024-03-09T23:30",
			want:  time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC),
		},
		{
			name:  "space separator",
			input: "2024-03-09 23:30:00",
			want:  time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC),
		},
		{name: "empty", input: "", err: true},
		{name: "garbage", input: "next tuesday", err: true},
		{name: "date only", input: "2024-03-09", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInstant(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInstant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDedupsResources(t *testing.T) {
	e := Event{
		ID:       "s-1",
		Kind:     KindSession,
		Trainers: []string{"Juan García", "Marta López", "Juan García"},
		Rooms:    []string{"Aula 2", "Aula 2"},
		Units:    []string{"UM-3"},
	}

	n := e.Normalize()

	if len(n.Trainers) != 2 || n.Trainers[0] != "Juan García" || n.Trainers[1] != "Marta López" {
		t.Errorf("trainers not de-duplicated in order: %v", n.Trainers)
	}
	if len(n.Rooms) != 1 {
		t.Errorf("rooms not de-duplicated: %v", n.Rooms)
	}
}

func TestSortByStart(t *testing.T) {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	events := []Event{
		{ID: "c", Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)},
		{ID: "b", Start: base, End: base.Add(time.Hour)},
		{ID: "a", Start: base, End: base.Add(time.Hour)},
	}

	SortByStart(events)

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if events[i].ID != id {
			t.Fatalf("order = [%s %s %s], want %v", events[0].ID, events[1].ID, events[2].ID, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindSession.String() != "session" || KindVariant.String() != "variant" {
		t.Errorf("kind strings wrong: %s, %s", KindSession, KindVariant)
	}
}
