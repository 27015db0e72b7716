package schedule

import "sort"

// sweepState is the explicit state threaded through the column
// assignment sweep: the still-active entries, the current
// overlap-connected group, and the column count tallied per group.
type sweepState struct {
	active    []int // indexes into the entry slice, still open
	group     int
	groupCols map[int]int
}

// assignColumns gives every entry a display column such that no two
// time-overlapping entries share one, and sets Columns to the final
// column count of the entry's overlap-connected group. First-fit over
// a start-sorted sweep, which is optimal for interval graphs.
func assignColumns(entries []Entry) {
	if len(entries) == 0 {
		return
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := entries[order[a]], entries[order[b]]
		if ea.StartMinutes != eb.StartMinutes {
			return ea.StartMinutes < eb.StartMinutes
		}
		return ea.EndMinutes < eb.EndMinutes
	})

	state := sweepState{group: -1, groupCols: make(map[int]int)}
	groupOf := make([]int, len(entries))

	for _, i := range order {
		e := &entries[i]

		// Drop entries that ended at or before this start.
		open := state.active[:0]
		for _, j := range state.active {
			if entries[j].EndMinutes > e.StartMinutes {
				open = append(open, j)
			}
		}
		state.active = open

		// An empty active set starts a new overlap-connected group.
		if len(state.active) == 0 {
			state.group++
		}

		used := make(map[int]bool, len(state.active))
		for _, j := range state.active {
			used[entries[j].Column] = true
		}
		col := 0
		for used[col] {
			col++
		}
		e.Column = col
		groupOf[i] = state.group
		if col+1 > state.groupCols[state.group] {
			state.groupCols[state.group] = col + 1
		}

		state.active = append(state.active, i)
	}

	for i := range entries {
		entries[i].Columns = state.groupCols[groupOf[i]]
	}
}

// AssignColumns exposes the sweep for callers that build entries
// themselves (tests, alternative renderers).
func AssignColumns(entries []Entry) {
	assignColumns(entries)
}
