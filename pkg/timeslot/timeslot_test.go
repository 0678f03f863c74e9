package timeslot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daySnapshot() []Slot {
	return []Slot{
		{ID: 1, StartTime: "06:00", EndTime: "07:00", Available: true},
		{ID: 2, StartTime: "07:00", EndTime: "08:00", Available: true},
		{ID: 3, StartTime: "08:00", EndTime: "09:00", Available: true},
		{ID: 4, StartTime: "09:00", EndTime: "10:00", Available: false},
		{ID: 5, StartTime: "10:00", EndTime: "11:00", Available: true},
	}
}

// Any click order that grows the run from either end commits the same final
// set. Orders that jump over a gap trigger the reset-to-clicked rule and are
// covered by the violation tests below.
func TestToggle_ClickOrderIndependence(t *testing.T) {
	snapshot := daySnapshot()
	contiguous := []int64{1, 2, 3}

	for i := 0; i < 20; i++ {
		order := growingOrder(contiguous)

		var selected []int64

		for _, id := range order {
			var violation bool

			selected, violation = Toggle(snapshot, selected, id)
			require.False(t, violation, "click order %v must never violate contiguity", order)
		}

		assert.ElementsMatch(t, contiguous, selected, "click order %v", order)
	}
}

// growingOrder permutes ids (assumed sorted and chained) so that every prefix
// stays contiguous: start anywhere, then repeatedly extend the run left or
// right at random.
func growingOrder(ids []int64) []int64 {
	lo := rand.Intn(len(ids))
	hi := lo
	order := []int64{ids[lo]}

	for len(order) < len(ids) {
		extendLeft := lo > 0 && (hi == len(ids)-1 || rand.Intn(2) == 0)

		if extendLeft {
			lo--
			order = append(order, ids[lo])
		} else {
			hi++
			order = append(order, ids[hi])
		}
	}

	return order
}

func TestToggle_ViolationResetsToClickedSlot(t *testing.T) {
	snapshot := daySnapshot()

	selected, violation := Toggle(snapshot, nil, 1)
	require.False(t, violation)

	// Slot 5 does not chain with slot 1 (gap at 07:00-10:00).
	selected, violation = Toggle(snapshot, selected, 5)

	assert.True(t, violation)
	assert.Equal(t, []int64{5}, selected)
}

func TestToggle_DeselectLastSlot(t *testing.T) {
	snapshot := daySnapshot()

	selected, _ := Toggle(snapshot, nil, 2)
	selected, violation := Toggle(snapshot, selected, 2)

	assert.False(t, violation)
	assert.Empty(t, selected)
}

func TestToggle_DeselectMiddleSlotViolates(t *testing.T) {
	snapshot := daySnapshot()
	selected := []int64{1, 2, 3}

	// Removing the middle slot leaves 06:00-07:00 and 08:00-09:00 with a gap.
	next, violation := Toggle(snapshot, selected, 2)

	assert.True(t, violation)
	assert.Equal(t, []int64{2}, next)
}

func TestToggle_UnavailableSlotIsNoOp(t *testing.T) {
	snapshot := daySnapshot()
	selected := []int64{1, 2}

	next, violation := Toggle(snapshot, selected, 4)

	assert.False(t, violation)
	assert.Equal(t, selected, next)
}

func TestToggle_UnknownSlotIsNoOp(t *testing.T) {
	next, violation := Toggle(daySnapshot(), []int64{1}, 99)

	assert.False(t, violation)
	assert.Equal(t, []int64{1}, next)
}

func TestInterval(t *testing.T) {
	slots := []Slot{
		{ID: 3, StartTime: "08:00", EndTime: "09:00"},
		{ID: 1, StartTime: "06:00", EndTime: "07:00"},
		{ID: 2, StartTime: "07:00", EndTime: "08:00"},
	}

	start, end, ok := Interval(slots)

	assert.True(t, ok)
	assert.Equal(t, "06:00", start)
	assert.Equal(t, "09:00", end)

	_, _, ok = Interval(nil)
	assert.False(t, ok)
}

func TestContiguous(t *testing.T) {
	assert.True(t, Contiguous(nil))
	assert.True(t, Contiguous([]Slot{{StartTime: "06:00", EndTime: "07:00"}}))

	assert.True(t, Contiguous([]Slot{
		{StartTime: "07:00", EndTime: "08:00"},
		{StartTime: "06:00", EndTime: "07:00"},
	}))

	assert.False(t, Contiguous([]Slot{
		{StartTime: "06:00", EndTime: "07:00"},
		{StartTime: "08:00", EndTime: "09:00"},
	}))
}

func TestChain(t *testing.T) {
	snapshot := daySnapshot()

	t.Run("covers a whole available run", func(t *testing.T) {
		chain, ok := Chain(snapshot, "06:00", "09:00")

		require.True(t, ok)
		require.Len(t, chain, 3)
		assert.Equal(t, int64(1), chain[0].ID)
		assert.Equal(t, int64(3), chain[2].ID)
	})

	t.Run("blocked slot breaks the chain", func(t *testing.T) {
		_, ok := Chain(snapshot, "08:00", "11:00")

		assert.False(t, ok)
	})

	t.Run("window past the last defined slot", func(t *testing.T) {
		_, ok := Chain(snapshot, "10:00", "12:00")

		assert.False(t, ok)
	})

	t.Run("degenerate windows", func(t *testing.T) {
		_, ok := Chain(snapshot, "06:00", "06:00")
		assert.False(t, ok)

		_, ok = Chain(snapshot, "", "09:00")
		assert.False(t, ok)

		_, ok = Chain(snapshot, "09:00", "06:00")
		assert.False(t, ok)
	})
}

func TestMaterialize_DropsStaleIDs(t *testing.T) {
	snapshot := daySnapshot()

	out := Materialize(snapshot, []int64{3, 99, 1})

	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)
}
