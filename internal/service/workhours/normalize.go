package workhours

import (
	"strings"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
)

// inferDirection classifies a punch from its free-text action description.
// The direction is recomputed on every run; absence of the field means
// check-in.
func inferDirection(actionDescription *string) workhours.Direction {
	if actionDescription == nil {
		return workhours.DirectionIn
	}
	desc := strings.ToLower(*actionDescription)
	if strings.Contains(desc, "checkout") || strings.Contains(desc, "out") {
		return workhours.DirectionOut
	}
	return workhours.DirectionIn
}

// combine merges a calendar date with a time-of-day into a single timestamp.
// If the date value already carries a clock component it is ignored; only
// its date part is used.
func combine(date, timeOfDay time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), timeOfDay.Second(), 0,
		time.Local,
	)
}

// EventFromPunch converts a stored punch record into a canonical event.
// Records missing an employee id, date or time are skipped (ok=false), never
// fatal: one bad punch must not abort a calculation batch.
func EventFromPunch(rec punch.Punch) (workhours.Event, bool) {
	if strings.TrimSpace(rec.EmployeeID) == "" || rec.CheckInDate.IsZero() || rec.CheckInTime.IsZero() {
		return workhours.Event{}, false
	}

	baseID, workType := Classify(rec.EmployeeID)
	date := time.Date(rec.CheckInDate.Year(), rec.CheckInDate.Month(), rec.CheckInDate.Day(), 0, 0, 0, 0, time.Local)

	return workhours.Event{
		RecordID:     rec.ID,
		EmployeeID:   rec.EmployeeID,
		BaseID:       baseID,
		WorkType:     workType,
		Date:         date,
		TimeOfDay:    rec.CheckInTime,
		LocationName: rec.LocationName,
		Direction:    inferDirection(rec.ActionDescription),
		Timestamp:    combine(rec.CheckInDate, rec.CheckInTime),
	}, true
}

// PunchFromMap adapts a map-shaped raw payload (import/backfill path) into a
// punch record. Field names follow the wire contract: employee_id, date,
// time, location_name, record_type, action_description, id. Entries missing
// a required field are skipped.
func PunchFromMap(m map[string]any) (punch.Punch, bool) {
	employeeID, _ := m["employee_id"].(string)
	dateStr, _ := m["date"].(string)
	timeStr, _ := m["time"].(string)

	if strings.TrimSpace(employeeID) == "" || dateStr == "" || timeStr == "" {
		return punch.Punch{}, false
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return punch.Punch{}, false
	}

	timeOfDay, err := time.Parse("15:04:05", timeStr)
	if err != nil {
		timeOfDay, err = time.Parse("15:04", timeStr)
		if err != nil {
			return punch.Punch{}, false
		}
	}

	rec := punch.Punch{
		EmployeeID:  employeeID,
		CheckInDate: date,
		CheckInTime: timeOfDay,
	}

	if id, ok := m["id"].(float64); ok {
		rec.ID = int64(id)
	}
	if loc, ok := m["location_name"].(string); ok {
		rec.LocationName = loc
	}
	if rt, ok := m["record_type"].(string); ok && rt != "" {
		rec.RecordType = &rt
	}
	if desc, ok := m["action_description"].(string); ok && desc != "" {
		rec.ActionDescription = &desc
	}

	return rec, true
}
