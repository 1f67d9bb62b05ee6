package workhours

import (
	"math"

	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
)

// MissPunchMinutes is the sentinel a day resolves to when any of its pairs
// is incomplete. It propagates as "day incomplete" rather than a silent 0,
// so payroll can tell missing data apart from no work.
const MissPunchMinutes = -1

// DailyMinutes sums the durations of one day's pairs for one bucket and
// rounds the total to the nearest quarter hour. A single miss-punch
// invalidates the whole day for that bucket: the true worked time cannot be
// determined, so the sentinel is returned instead of a partial sum.
//
// Rounding is applied once to the day total, not per pair, so punch-clock
// imprecision does not compound.
func DailyMinutes(pairs []workhours.Pair) int {
	total := 0
	for _, p := range pairs {
		d := p.DurationMinutes()
		if d < 0 {
			return MissPunchMinutes
		}
		total += d
	}
	return roundToQuarterHour(total)
}

func roundToQuarterHour(minutes int) int {
	return int(math.Round(float64(minutes)/15.0)) * 15
}
