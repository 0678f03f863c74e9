package client

import "github.com/quickcourt/quickcourt/pkg/timeslot"

// SelectionState is the booking session's progress through court and date
// choice.
type SelectionState int

const (
	StateEmpty SelectionState = iota
	StateCourtChosen
	StateDateChosen
	StateSlotsSelected
)

// Selection is the slot-selection session for one court on one date. Slot ids
// are scoped to the current availability snapshot: choosing another court or
// date always discards the selection, since ids are not stable across
// refetches.
//
// Selection is not safe for concurrent use; it models a single user session.
type Selection struct {
	court    *Court
	date     string
	snapshot []timeslot.Slot
	selected []int64
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) State() SelectionState {
	switch {
	case s.court == nil:
		return StateEmpty
	case s.date == "":
		return StateCourtChosen
	case len(s.selected) == 0:
		return StateDateChosen
	default:
		return StateSlotsSelected
	}
}

// ChooseCourt starts a fresh session on the given court. Any previous date,
// snapshot and selection are discarded.
func (s *Selection) ChooseCourt(court Court) {
	c := court
	s.court = &c
	s.date = ""
	s.snapshot = nil
	s.selected = nil
}

// ChooseDate sets the date and installs the freshly fetched slot snapshot for
// it, clearing the selection. The caller refetches availability first and
// passes the new snapshot here.
func (s *Selection) ChooseDate(date string, snapshot []timeslot.Slot) {
	s.date = date
	s.snapshot = snapshot
	s.selected = nil
}

// Toggle applies one slot click. Clicking an unavailable or unknown slot is a
// no-op. If adding the clicked slot breaks the contiguity chain, the
// selection resets to just the clicked slot and violation is true.
func (s *Selection) Toggle(slotID int64) (violation bool) {
	if s.court == nil || s.date == "" {
		return false
	}

	s.selected, violation = timeslot.Toggle(s.snapshot, s.selected, slotID)

	return violation
}

// Slots returns the committed selection materialized against the snapshot,
// sorted by start time.
func (s *Selection) Slots() []timeslot.Slot {
	return timeslot.Materialize(s.snapshot, s.selected)
}

// Duration is the booked hours: one per selected slot.
func (s *Selection) Duration() int {
	return len(s.selected)
}

// TotalPrice is the hourly rate times the slot count, in major currency
// units. Per-slot price overrides in the snapshot are not summed.
func (s *Selection) TotalPrice() int64 {
	if s.court == nil {
		return 0
	}

	return s.court.PricePerHour * int64(len(s.selected))
}

// TotalPriceMinor is TotalPrice in minor currency units, as payment providers
// expect.
func (s *Selection) TotalPriceMinor() int64 {
	return s.TotalPrice() * 100
}

// Interval collapses the selection into one booking interval, earliest start
// to latest end. ok is false when nothing is selected.
func (s *Selection) Interval() (start, end string, ok bool) {
	return timeslot.Interval(s.Slots())
}

func (s *Selection) Court() *Court {
	return s.court
}

func (s *Selection) Date() string {
	return s.date
}
