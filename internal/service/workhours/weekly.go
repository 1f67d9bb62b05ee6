package workhours

import (
	"math"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
)

// overtimeThresholdHours is the weekly cap on regular hours; everything
// above it is overtime. SP/PW/PT hours never count toward this threshold.
const overtimeThresholdHours = 40.0

// weeklyAccumulator collects per-bucket hours across a run of consecutive
// days. It is built fresh for every report; nothing is shared between calls.
type weeklyAccumulator struct {
	weekStart time.Time
	started   bool
	regular   float64
	sp        float64
	pw        float64
	pt        float64
}

// add contributes one day's bucket hours. Sentinel (negative) day totals
// contribute nothing; the miss-punch flag is surfaced at the day level.
func (w *weeklyAccumulator) add(day time.Time, bucket workhours.WorkType, minutes int) {
	if !w.started {
		w.weekStart = day
		w.started = true
	}
	if minutes <= 0 {
		return
	}
	hours := float64(minutes) / 60.0
	switch bucket {
	case workhours.WorkTypeSpecialProject:
		w.sp += hours
	case workhours.WorkTypePeriodicWork:
		w.pw += hours
	case workhours.WorkTypePartTime:
		w.pt += hours
	default:
		w.regular += hours
	}
}

// shouldFlush reports whether the week ends on this day: Sunday, or the last
// day of the requested range, whichever comes first.
func (w *weeklyAccumulator) shouldFlush(day, rangeEnd time.Time) bool {
	return day.Weekday() == time.Sunday || day.Equal(rangeEnd)
}

// flush emits the week summary, splitting the regular bucket at the 40-hour
// threshold, and resets every accumulator.
func (w *weeklyAccumulator) flush(weekEnd time.Time) workhours.WeeklyEntry {
	regular := math.Min(w.regular, overtimeThresholdHours)
	overtime := math.Max(0, w.regular-overtimeThresholdHours)

	entry := workhours.WeeklyEntry{
		WeekStart:     w.weekStart.Format("2006-01-02"),
		WeekEnd:       weekEnd.Format("2006-01-02"),
		TotalHours:    round2(w.regular + w.sp + w.pw + w.pt),
		RegularHours:  round2(regular),
		OvertimeHours: round2(overtime),
		SPHours:       round2(w.sp),
		PWHours:       round2(w.pw),
		PTHours:       round2(w.pt),
	}

	*w = weeklyAccumulator{}
	return entry
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
