package workhours

import (
	"testing"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventAt(hour, minute int, direction workhours.Direction) workhours.Event {
	ts := time.Date(2024, 1, 1, hour, minute, 0, 0, time.Local)
	return workhours.Event{
		EmployeeID: "1234",
		BaseID:     "1234",
		WorkType:   workhours.WorkTypeRegular,
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		Direction:  direction,
		Timestamp:  ts,
	}
}

func TestBuildPairs_Empty(t *testing.T) {
	assert.Empty(t, BuildPairs(nil))
}

func TestBuildPairs_AlternatingBalanced(t *testing.T) {
	events := []workhours.Event{
		eventAt(8, 0, workhours.DirectionIn),
		eventAt(12, 0, workhours.DirectionOut),
		eventAt(13, 0, workhours.DirectionIn),
		eventAt(17, 0, workhours.DirectionOut),
	}

	pairs := BuildPairs(events)
	require.Len(t, pairs, 2)

	total := 0
	for _, p := range pairs {
		assert.False(t, p.MissPunch)
		total += p.DurationMinutes()
	}
	assert.Equal(t, 480, total)
}

func TestBuildPairs_LoneCheckIn(t *testing.T) {
	pairs := BuildPairs([]workhours.Event{eventAt(9, 0, workhours.DirectionIn)})
	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].MissPunch)
	assert.NotNil(t, pairs[0].CheckIn)
	assert.Nil(t, pairs[0].CheckOut)
	assert.Equal(t, -1, pairs[0].DurationMinutes())
}

func TestBuildPairs_OrphanCheckOut(t *testing.T) {
	pairs := BuildPairs([]workhours.Event{eventAt(17, 0, workhours.DirectionOut)})
	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].MissPunch)
	assert.Nil(t, pairs[0].CheckIn)
	assert.NotNil(t, pairs[0].CheckOut)
}

func TestBuildPairs_ConsecutiveCheckOuts(t *testing.T) {
	events := []workhours.Event{
		eventAt(8, 0, workhours.DirectionIn),
		eventAt(12, 0, workhours.DirectionOut),
		eventAt(12, 30, workhours.DirectionOut),
	}

	pairs := BuildPairs(events)
	require.Len(t, pairs, 2)
	assert.False(t, pairs[0].MissPunch)
	assert.Equal(t, 240, pairs[0].DurationMinutes())
	assert.True(t, pairs[1].MissPunch)
	assert.Nil(t, pairs[1].CheckIn)
}

func TestBuildPairs_FirstInFirstMatched(t *testing.T) {
	// Two check-ins before one check-out: the first check-in takes the
	// check-out, the intervening one is flagged, not silently dropped.
	events := []workhours.Event{
		eventAt(8, 0, workhours.DirectionIn),
		eventAt(9, 0, workhours.DirectionIn),
		eventAt(17, 0, workhours.DirectionOut),
	}

	pairs := BuildPairs(events)
	require.Len(t, pairs, 2)

	assert.False(t, pairs[0].MissPunch)
	assert.Equal(t, 8, pairs[0].CheckIn.Timestamp.Hour())
	assert.Equal(t, 17, pairs[0].CheckOut.Timestamp.Hour())

	assert.True(t, pairs[1].MissPunch)
	assert.Equal(t, 9, pairs[1].CheckIn.Timestamp.Hour())
}

func TestBuildPairs_UnsortedInput(t *testing.T) {
	events := []workhours.Event{
		eventAt(17, 0, workhours.DirectionOut),
		eventAt(8, 0, workhours.DirectionIn),
	}

	pairs := BuildPairs(events)
	require.Len(t, pairs, 1)
	assert.False(t, pairs[0].MissPunch)
	assert.Equal(t, 540, pairs[0].DurationMinutes())
}

func TestBuildPairs_EveryEventAppearsOnce(t *testing.T) {
	events := []workhours.Event{
		eventAt(8, 0, workhours.DirectionIn),
		eventAt(9, 0, workhours.DirectionIn),
		eventAt(12, 0, workhours.DirectionOut),
		eventAt(13, 0, workhours.DirectionOut),
		eventAt(14, 0, workhours.DirectionIn),
	}

	pairs := BuildPairs(events)
	require.NotEmpty(t, pairs)

	count := 0
	for _, p := range pairs {
		if p.CheckIn != nil {
			count++
		}
		if p.CheckOut != nil {
			count++
		}
	}
	assert.Equal(t, len(events), count)
}
