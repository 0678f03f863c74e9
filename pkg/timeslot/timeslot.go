// Package timeslot holds the slot-selection algebra shared by the booking
// client and the server-side checkout validation: sorting, contiguity
// checking, interval collapsing and the toggle rule for building a selection
// one click at a time.
//
// Slots carry wall-clock times in "15:04" format. Within one day those
// strings order lexicographically, so no time parsing is needed to sort or
// chain them.
package timeslot

import "sort"

// Slot is a one-hour bookable interval for a court on a date. Slot ids are
// scoped to a single availability snapshot and must not be compared across
// refetches.
type Slot struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"is_available"`
	// Price is a per-slot override carried from the backend. It is not
	// summed into totals: the booking price is always hourly rate times
	// slot count.
	Price int64 `json:"price,omitempty"`
}

// SortByStart orders slots by start time ascending, in place.
func SortByStart(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime < slots[j].StartTime
	})
}

// Contiguous reports whether slots, sorted by start time, chain without gaps:
// each slot's end time equals the next slot's start time. Zero or one slot is
// trivially contiguous.
func Contiguous(slots []Slot) bool {
	if len(slots) < 2 {
		return true
	}

	sorted := make([]Slot, len(slots))
	copy(sorted, slots)
	SortByStart(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].EndTime != sorted[i].StartTime {
			return false
		}
	}

	return true
}

// Interval collapses a non-empty contiguous selection into a single booking
// interval: earliest start to latest end. ok is false for an empty set.
func Interval(slots []Slot) (start, end string, ok bool) {
	if len(slots) == 0 {
		return "", "", false
	}

	sorted := make([]Slot, len(slots))
	copy(sorted, slots)
	SortByStart(sorted)

	return sorted[0].StartTime, sorted[len(sorted)-1].EndTime, true
}

// Materialize resolves selected ids against a snapshot, dropping ids that no
// longer exist, and returns the records sorted by start time.
func Materialize(snapshot []Slot, ids []int64) []Slot {
	byID := make(map[int64]Slot, len(snapshot))
	for _, s := range snapshot {
		byID[s.ID] = s
	}

	out := make([]Slot, 0, len(ids))

	for _, id := range ids {
		if s, found := byID[id]; found {
			out = append(out, s)
		}
	}

	SortByStart(out)

	return out
}

// Toggle applies one click to a selection and returns the committed next
// selection.
//
// Only available slots are toggleable; clicking anything else is a no-op.
// The candidate set is the current selection XOR the clicked id. If the
// candidate, sorted by start time, breaks the end==start chain anywhere, the
// selection resets to just the clicked slot and violation is true. Otherwise
// the candidate is committed as-is.
func Toggle(snapshot []Slot, selected []int64, clicked int64) (next []int64, violation bool) {
	var clickedSlot *Slot

	for i := range snapshot {
		if snapshot[i].ID == clicked {
			clickedSlot = &snapshot[i]

			break
		}
	}

	if clickedSlot == nil || !clickedSlot.Available {
		next = make([]int64, len(selected))
		copy(next, selected)

		return next, false
	}

	candidate := make([]int64, 0, len(selected)+1)
	removed := false

	for _, id := range selected {
		if id == clicked {
			removed = true

			continue
		}

		candidate = append(candidate, id)
	}

	if !removed {
		candidate = append(candidate, clicked)
	}

	records := Materialize(snapshot, candidate)
	if len(records) > 1 && !Contiguous(records) {
		return []int64{clicked}, true
	}

	next = make([]int64, len(records))
	for i, s := range records {
		next[i] = s.ID
	}

	return next, false
}

// Chain finds the run of available slots that exactly covers [start, end):
// the first slot starts at start, each slot's end feeds the next slot's
// start, and the last slot ends at end. ok is false when any link is missing
// or unavailable.
func Chain(snapshot []Slot, start, end string) (chain []Slot, ok bool) {
	if start == "" || end == "" || start >= end {
		return nil, false
	}

	byStart := make(map[string]Slot, len(snapshot))

	for _, s := range snapshot {
		if s.Available {
			byStart[s.StartTime] = s
		}
	}

	cursor := start
	for cursor != end {
		s, found := byStart[cursor]
		if !found || s.EndTime > end {
			return nil, false
		}

		chain = append(chain, s)
		cursor = s.EndTime
	}

	return chain, true
}
