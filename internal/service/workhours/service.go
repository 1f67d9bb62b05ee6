package workhours

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
)

type CalculatorImpl struct{}

func NewCalculator() workhours.Calculator {
	return &CalculatorImpl{}
}

// eventsByDay maps ISO date -> events, per work-type bucket. Buckets are
// never merged before pairing: mixing SP and regular punches on the same day
// would corrupt the pair reconstruction.
type eventsByDay map[string][]workhours.Event

// CalculateEmployeeHours implements workhours.Calculator.
func (c *CalculatorImpl) CalculateEmployeeHours(employeeID string, startDate, endDate time.Time, records []punch.Punch) (workhours.EmployeeReport, error) {
	if strings.TrimSpace(employeeID) == "" {
		return workhours.EmployeeReport{}, workhours.ErrEmptyEmployeeID
	}

	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	if end.Before(start) {
		return workhours.EmployeeReport{}, fmt.Errorf("%w: %s after %s",
			workhours.ErrInvalidDateRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	baseID, _ := Classify(employeeID)
	buckets := bucketEvents(records, baseID)

	report := workhours.EmployeeReport{
		EmployeeID:     employeeID,
		BaseEmployeeID: baseID,
		StartDate:      start.Format("2006-01-02"),
		EndDate:        end.Format("2006-01-02"),
		DailyHours:     make(map[string]workhours.DailyEntry),
		WeeklyHours:    []workhours.WeeklyEntry{},
	}

	var week weeklyAccumulator

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dateKey := day.Format("2006-01-02")
		entry := workhours.DailyEntry{MissPunchDetails: []workhours.MissPunchDetail{}}

		for _, workType := range workhours.AllWorkTypes {
			events := buckets[workType][dateKey]
			if len(events) == 0 {
				week.add(day, workType, 0)
				continue
			}

			entry.RecordsCount += len(events)
			pairs := BuildPairs(events)
			minutes := DailyMinutes(pairs)

			if minutes == MissPunchMinutes {
				entry.IsMissPunch = true
				entry.MissPunchDetails = append(entry.MissPunchDetails, missPunchDetails(workType, pairs)...)
				week.add(day, workType, 0)
				continue
			}

			hours := round2(float64(minutes) / 60.0)
			switch workType {
			case workhours.WorkTypeSpecialProject:
				entry.SPHours = hours
			case workhours.WorkTypePeriodicWork:
				entry.PWHours = hours
			case workhours.WorkTypePartTime:
				entry.PTHours = hours
			default:
				entry.RegularHours = hours
			}
			entry.TotalMinutes += minutes
			week.add(day, workType, minutes)
		}

		entry.TotalHours = round2(float64(entry.TotalMinutes) / 60.0)
		report.DailyHours[dateKey] = entry

		if week.shouldFlush(day, end) {
			report.WeeklyHours = append(report.WeeklyHours, week.flush(day))
		}
	}

	report.GrandTotals = sumWeeklyEntries(report.WeeklyHours)
	return report, nil
}

// CalculateAllEmployeesHours implements workhours.Calculator.
func (c *CalculatorImpl) CalculateAllEmployeesHours(startDate, endDate time.Time, records []punch.Punch) (workhours.MultiEmployeeReport, error) {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	if end.Before(start) {
		return workhours.MultiEmployeeReport{}, fmt.Errorf("%w: %s after %s",
			workhours.ErrInvalidDateRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	baseIDs := distinctBaseIDs(records)

	result := workhours.MultiEmployeeReport{
		CalculationDate: time.Now().Format(time.RFC3339),
		PeriodStart:     start.Format("2006-01-02"),
		PeriodEnd:       end.Format("2006-01-02"),
		EmployeeCount:   len(baseIDs),
		Employees:       make(map[string]workhours.EmployeeReport, len(baseIDs)),
	}

	for _, baseID := range baseIDs {
		// One employee's failure must not poison the batch: fall back to an
		// explicit all-zero report and keep going.
		result.Employees[baseID] = c.safeCalculate(baseID, start, end, records)
	}

	return result, nil
}

func (c *CalculatorImpl) safeCalculate(baseID string, start, end time.Time, records []punch.Punch) (report workhours.EmployeeReport) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("work hours calculation panicked, substituting zero report",
				"employee_id", baseID, "panic", r)
			report = zeroReport(baseID, start, end)
		}
	}()

	report, err := c.CalculateEmployeeHours(baseID, start, end, records)
	if err != nil {
		slog.Error("work hours calculation failed, substituting zero report",
			"employee_id", baseID, "error", err)
		return zeroReport(baseID, start, end)
	}
	return report
}

func zeroReport(employeeID string, start, end time.Time) workhours.EmployeeReport {
	return workhours.EmployeeReport{
		EmployeeID:     employeeID,
		BaseEmployeeID: employeeID,
		StartDate:      start.Format("2006-01-02"),
		EndDate:        end.Format("2006-01-02"),
		DailyHours:     make(map[string]workhours.DailyEntry),
		WeeklyHours:    []workhours.WeeklyEntry{},
	}
}

// bucketEvents normalizes the raw batch and groups the surviving events by
// work type and day for one base employee. Malformed records are skipped.
func bucketEvents(records []punch.Punch, baseID string) map[workhours.WorkType]eventsByDay {
	buckets := make(map[workhours.WorkType]eventsByDay, len(workhours.AllWorkTypes))
	for _, workType := range workhours.AllWorkTypes {
		buckets[workType] = make(eventsByDay)
	}

	for _, rec := range records {
		event, ok := EventFromPunch(rec)
		if !ok {
			slog.Debug("skipping malformed punch record", "record_id", rec.ID, "employee_id", rec.EmployeeID)
			continue
		}
		if event.BaseID != baseID {
			continue
		}
		dateKey := event.Date.Format("2006-01-02")
		buckets[event.WorkType][dateKey] = append(buckets[event.WorkType][dateKey], event)
	}

	return buckets
}

func distinctBaseIDs(records []punch.Punch) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		if strings.TrimSpace(rec.EmployeeID) == "" {
			continue
		}
		baseID, _ := Classify(rec.EmployeeID)
		seen[baseID] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func missPunchDetails(workType workhours.WorkType, pairs []workhours.Pair) []workhours.MissPunchDetail {
	var details []workhours.MissPunchDetail
	for _, p := range pairs {
		if !p.MissPunch {
			continue
		}
		leg := p.CheckIn
		direction := "check_in"
		if leg == nil {
			leg = p.CheckOut
			direction = "check_out"
		}
		details = append(details, workhours.MissPunchDetail{
			WorkType:  workType,
			Direction: direction,
			Time:      leg.Timestamp.Format("15:04:05"),
			Location:  leg.LocationName,
		})
	}
	return details
}

func sumWeeklyEntries(weeks []workhours.WeeklyEntry) workhours.GrandTotals {
	var totals workhours.GrandTotals
	for _, w := range weeks {
		totals.TotalHours += w.TotalHours
		totals.RegularHours += w.RegularHours
		totals.OvertimeHours += w.OvertimeHours
		totals.SPHours += w.SPHours
		totals.PWHours += w.PWHours
		totals.PTHours += w.PTHours
	}

	totals.TotalHours = round2(totals.TotalHours)
	totals.RegularHours = round2(totals.RegularHours)
	totals.OvertimeHours = round2(totals.OvertimeHours)
	totals.SPHours = round2(totals.SPHours)
	totals.PWHours = round2(totals.PWHours)
	totals.PTHours = round2(totals.PTHours)

	totals.TotalMinutes = hoursToMinutes(totals.TotalHours)
	totals.RegularMinutes = hoursToMinutes(totals.RegularHours)
	totals.OvertimeMinutes = hoursToMinutes(totals.OvertimeHours)
	totals.SPMinutes = hoursToMinutes(totals.SPHours)
	totals.PWMinutes = hoursToMinutes(totals.PWHours)
	totals.PTMinutes = hoursToMinutes(totals.PTHours)

	return totals
}

func hoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
