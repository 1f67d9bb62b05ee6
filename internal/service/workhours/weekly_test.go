package workhours

import (
	"testing"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
	"github.com/stretchr/testify/assert"
)

func TestWeeklyAccumulator_NoOvertimeAtExactly40Hours(t *testing.T) {
	var week weeklyAccumulator
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	week.add(day, workhours.WorkTypeRegular, 2400)

	entry := week.flush(day.AddDate(0, 0, 6))
	assert.Equal(t, 40.0, entry.RegularHours)
	assert.Equal(t, 0.0, entry.OvertimeHours)
	assert.Equal(t, 40.0, entry.TotalHours)
}

func TestWeeklyAccumulator_OvertimeAbove40Hours(t *testing.T) {
	var week weeklyAccumulator
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	week.add(day, workhours.WorkTypeRegular, 2460)

	entry := week.flush(day.AddDate(0, 0, 6))
	assert.Equal(t, 40.0, entry.RegularHours)
	assert.Equal(t, 1.0, entry.OvertimeHours)
	assert.Equal(t, 41.0, entry.TotalHours)
}

func TestWeeklyAccumulator_SPNeverFeedsOvertime(t *testing.T) {
	var week weeklyAccumulator
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	week.add(day, workhours.WorkTypeRegular, 1200)        // 20h
	week.add(day, workhours.WorkTypeSpecialProject, 1800) // 30h

	entry := week.flush(day.AddDate(0, 0, 6))
	assert.Equal(t, 20.0, entry.RegularHours)
	assert.Equal(t, 0.0, entry.OvertimeHours)
	assert.Equal(t, 30.0, entry.SPHours)
	assert.Equal(t, 50.0, entry.TotalHours)
}

func TestWeeklyAccumulator_SentinelDayContributesNothing(t *testing.T) {
	var week weeklyAccumulator
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	week.add(day, workhours.WorkTypeRegular, 480)
	week.add(day.AddDate(0, 0, 1), workhours.WorkTypeRegular, MissPunchMinutes)

	entry := week.flush(day.AddDate(0, 0, 6))
	assert.Equal(t, 8.0, entry.RegularHours)
}

func TestWeeklyAccumulator_ResetsAfterFlush(t *testing.T) {
	var week weeklyAccumulator
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	week.add(day, workhours.WorkTypeRegular, 480)
	week.flush(day)

	week.add(day.AddDate(0, 0, 1), workhours.WorkTypeRegular, 240)
	entry := week.flush(day.AddDate(0, 0, 7))
	assert.Equal(t, 4.0, entry.RegularHours)
	assert.Equal(t, day.AddDate(0, 0, 1).Format("2006-01-02"), entry.WeekStart)
}

func TestWeeklyAccumulator_FlushBoundaries(t *testing.T) {
	var week weeklyAccumulator
	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local)
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local)
	rangeEnd := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)

	assert.True(t, week.shouldFlush(sunday, rangeEnd))
	assert.False(t, week.shouldFlush(monday, rangeEnd))
	assert.True(t, week.shouldFlush(rangeEnd, rangeEnd))
}
