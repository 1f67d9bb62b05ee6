package workhours

import (
	"sort"

	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
)

// BuildPairs reconstructs check-in/check-out pairs from one day's events for
// a single (employee, work-type) bucket. Events are sorted by timestamp and
// scanned left to right:
//
//   - a check-in is paired with the next check-out after it; intervening
//     check-ins do not close it and are not consumed by the scan
//   - a check-in with no later check-out becomes a miss-punch pair
//   - a check-out with no open check-in before it becomes an orphan
//     miss-punch pair
//
// Every input event appears in exactly one output pair, so a non-empty input
// always yields at least one pair.
func BuildPairs(events []workhours.Event) []workhours.Pair {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]workhours.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	consumed := make([]bool, len(sorted))
	var pairs []workhours.Pair

	for i := range sorted {
		if consumed[i] {
			continue
		}
		consumed[i] = true
		ev := &sorted[i]

		if ev.Direction == workhours.DirectionOut {
			// Orphan check-out: nothing before it left open.
			pairs = append(pairs, workhours.Pair{CheckOut: ev, MissPunch: true})
			continue
		}

		// Scan forward for the next unconsumed check-out.
		matched := false
		for j := i + 1; j < len(sorted); j++ {
			if consumed[j] || sorted[j].Direction != workhours.DirectionOut {
				continue
			}
			consumed[j] = true
			pairs = append(pairs, workhours.Pair{CheckIn: ev, CheckOut: &sorted[j]})
			matched = true
			break
		}

		if !matched {
			pairs = append(pairs, workhours.Pair{CheckIn: ev, MissPunch: true})
		}
	}

	return pairs
}
