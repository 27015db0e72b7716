package schedule

import (
	"math/rand"
	"testing"
)

func spans(pairs ...[2]int) []Entry {
	entries := make([]Entry, len(pairs))
	for i, p := range pairs {
		entries[i] = Entry{StartMinutes: p[0], EndMinutes: p[1]}
	}
	return entries
}

func overlaps(a, b Entry) bool {
	return a.StartMinutes < b.EndMinutes && b.StartMinutes < a.EndMinutes
}

func TestAssignColumnsThreeWayOverlap(t *testing.T) {
	entries := spans([2]int{0, 60}, [2]int{30, 90}, [2]int{45, 75}, [2]int{100, 120})

	AssignColumns(entries)

	// The three mutually overlapping spans use exactly three distinct
	// columns and all report a count of 3.
	seen := map[int]bool{}
	for _, e := range entries[:3] {
		if e.Columns != 3 {
			t.Errorf("[%d,%d): Columns = %d, want 3", e.StartMinutes, e.EndMinutes, e.Columns)
		}
		if seen[e.Column] {
			t.Errorf("column %d reused within an overlapping trio", e.Column)
		}
		seen[e.Column] = true
	}

	// The disjoint fourth span starts a fresh group at column 0 and
	// does not inherit the trio's width.
	last := entries[3]
	if last.Column != 0 || last.Columns != 1 {
		t.Errorf("disjoint span got column %d of %d, want 0 of 1", last.Column, last.Columns)
	}
}

func TestAssignColumnsReusesFreedColumns(t *testing.T) {
	// Two chained pairs: the third span starts after the first ends,
	// so it can take column 0 again while staying in the same group.
	entries := spans([2]int{0, 60}, [2]int{30, 120}, [2]int{70, 110})

	AssignColumns(entries)

	if entries[2].Column != 0 {
		t.Errorf("freed column not reused first-fit: got %d", entries[2].Column)
	}
	for _, e := range entries {
		if e.Columns != 2 {
			t.Errorf("[%d,%d): Columns = %d, want 2", e.StartMinutes, e.EndMinutes, e.Columns)
		}
	}
}

func TestAssignColumnsTouchingSpansDoNotConflict(t *testing.T) {
	// End is exclusive: back-to-back spans share column 0.
	entries := spans([2]int{0, 60}, [2]int{60, 120}, [2]int{120, 180})

	AssignColumns(entries)

	for _, e := range entries {
		if e.Column != 0 || e.Columns != 1 {
			t.Errorf("[%d,%d): got column %d of %d, want 0 of 1",
				e.StartMinutes, e.EndMinutes, e.Column, e.Columns)
		}
	}
}

func TestAssignColumnsEmptyAndSingle(t *testing.T) {
	AssignColumns(nil)

	single := spans([2]int{300, 360})
	AssignColumns(single)
	if single[0].Column != 0 || single[0].Columns != 1 {
		t.Errorf("single span got column %d of %d", single[0].Column, single[0].Columns)
	}
}

func TestAssignColumnsNoOverlapSharesColumn(t *testing.T) {
	// Randomized sweep: no two overlapping spans may share a column,
	// and column indexes stay below the group's column count.
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(12)
		entries := make([]Entry, n)
		for i := range entries {
			start := rng.Intn(1380)
			entries[i] = Entry{StartMinutes: start, EndMinutes: start + 15 + rng.Intn(180)}
		}

		AssignColumns(entries)

		for i := range entries {
			if entries[i].Column >= entries[i].Columns {
				t.Fatalf("trial %d: column %d out of %d", trial, entries[i].Column, entries[i].Columns)
			}
			for j := i + 1; j < len(entries); j++ {
				if overlaps(entries[i], entries[j]) && entries[i].Column == entries[j].Column {
					t.Fatalf("trial %d: spans [%d,%d) and [%d,%d) share column %d",
						trial,
						entries[i].StartMinutes, entries[i].EndMinutes,
						entries[j].StartMinutes, entries[j].EndMinutes,
						entries[i].Column)
				}
			}
		}
	}
}
