package client

import (
	"testing"

	"github.com/quickcourt/quickcourt/pkg/timeslot"
	"github.com/stretchr/testify/assert"
)

func eveningSnapshot() []timeslot.Slot {
	return []timeslot.Slot{
		{ID: 1, StartTime: "18:00", EndTime: "19:00", Available: true},
		{ID: 2, StartTime: "19:00", EndTime: "20:00", Available: true},
		{ID: 3, StartTime: "20:00", EndTime: "21:00", Available: false},
		{ID: 4, StartTime: "21:00", EndTime: "22:00", Available: true},
	}
}

func TestSelection_StateMachine(t *testing.T) {
	sel := NewSelection()
	assert.Equal(t, StateEmpty, sel.State())

	sel.ChooseCourt(Court{ID: 3, Name: "Court 1", PricePerHour: 500})
	assert.Equal(t, StateCourtChosen, sel.State())

	sel.ChooseDate("2026-09-01", eveningSnapshot())
	assert.Equal(t, StateDateChosen, sel.State())

	sel.Toggle(1)
	assert.Equal(t, StateSlotsSelected, sel.State())

	sel.Toggle(1)
	assert.Equal(t, StateDateChosen, sel.State())
}

func TestSelection_CourtOrDateChangeClearsSelection(t *testing.T) {
	sel := NewSelection()
	sel.ChooseCourt(Court{ID: 3, PricePerHour: 500})
	sel.ChooseDate("2026-09-01", eveningSnapshot())

	sel.Toggle(1)
	sel.Toggle(2)
	assert.Equal(t, 2, sel.Duration())

	sel.ChooseDate("2026-09-02", eveningSnapshot())
	assert.Zero(t, sel.Duration())
	assert.Equal(t, StateDateChosen, sel.State())

	sel.Toggle(1)
	sel.ChooseCourt(Court{ID: 4, PricePerHour: 700})
	assert.Zero(t, sel.Duration())
	assert.Equal(t, StateCourtChosen, sel.State())
	assert.Empty(t, sel.Date())
}

func TestSelection_ToggleContiguity(t *testing.T) {
	sel := NewSelection()
	sel.ChooseCourt(Court{ID: 3, PricePerHour: 500})
	sel.ChooseDate("2026-09-01", eveningSnapshot())

	assert.False(t, sel.Toggle(1))
	assert.False(t, sel.Toggle(2))
	assert.Equal(t, 2, sel.Duration())

	// 20:00-21:00 is unavailable, so 21:00-22:00 cannot chain.
	violation := sel.Toggle(4)

	assert.True(t, violation)
	assert.Equal(t, 1, sel.Duration())
	assert.Equal(t, []int64{4}, idsOf(sel.Slots()))
}

func TestSelection_UnavailableSlotIsNoOp(t *testing.T) {
	sel := NewSelection()
	sel.ChooseCourt(Court{ID: 3, PricePerHour: 500})
	sel.ChooseDate("2026-09-01", eveningSnapshot())

	sel.Toggle(1)
	violation := sel.Toggle(3)

	assert.False(t, violation)
	assert.Equal(t, []int64{1}, idsOf(sel.Slots()))
}

func TestSelection_PriceAndInterval(t *testing.T) {
	sel := NewSelection()
	sel.ChooseCourt(Court{ID: 3, PricePerHour: 500})
	sel.ChooseDate("2026-09-01", eveningSnapshot())

	sel.Toggle(2)
	sel.Toggle(1)

	assert.Equal(t, 2, sel.Duration())
	assert.Equal(t, int64(1000), sel.TotalPrice())
	assert.Equal(t, int64(100000), sel.TotalPriceMinor())

	start, end, ok := sel.Interval()

	assert.True(t, ok)
	assert.Equal(t, "18:00", start)
	assert.Equal(t, "20:00", end)
}

func idsOf(slots []timeslot.Slot) []int64 {
	ids := make([]int64, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
	}

	return ids
}
