package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
)

type TimeclockJobs struct {
	punchRepo  punch.PunchRepository
	calculator workhours.Calculator
}

func NewTimeclockJobs(punchRepo punch.PunchRepository, calculator workhours.Calculator) *TimeclockJobs {
	return &TimeclockJobs{
		punchRepo:  punchRepo,
		calculator: calculator,
	}
}

func (j *TimeclockJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("scan_miss_punches", 1*time.Hour, j.ScanMissPunches)
}

// ScanMissPunches recalculates yesterday's hours and logs every employee
// whose day is invalidated by an unmatched punch, so the open punch can be
// corrected before the payroll run. Punch dates are local dates, so the
// hour gate and the day boundary both use local time.
func (j *TimeclockJobs) ScanMissPunches(ctx context.Context) error {
	// Only run in the first hour after midnight (01:00-01:59 local)
	now := time.Now()
	if now.Hour() != 1 {
		return nil
	}

	return j.scanDay(ctx, previousLocalDay(now))
}

// scanDay runs the miss-punch scan for one calendar day.
func (j *TimeclockJobs) scanDay(ctx context.Context, day time.Time) error {
	slog.Info("Cron: Starting miss-punch scan", "date", day.Format("2006-01-02"))

	records, err := j.punchRepo.ListByDateRange(ctx, day, day)
	if err != nil {
		return fmt.Errorf("failed to list punches: %w", err)
	}
	if len(records) == 0 {
		slog.Info("Cron: No punches recorded", "date", day.Format("2006-01-02"))
		return nil
	}

	multiReport, err := j.calculator.CalculateAllEmployeesHours(day, day, records)
	if err != nil {
		return fmt.Errorf("failed to calculate hours: %w", err)
	}

	flagged := 0
	for employeeID, report := range multiReport.Employees {
		for date, entry := range report.DailyHours {
			if !entry.IsMissPunch {
				continue
			}
			flagged++
			slog.Warn("Cron: Miss-punch detected",
				"employee_id", employeeID,
				"date", date,
				"unmatched_punches", len(entry.MissPunchDetails),
			)
		}
	}

	slog.Info("Cron: Miss-punch scan completed", "employees", multiReport.EmployeeCount, "flagged", flagged)
	return nil
}

// previousLocalDay returns local midnight of the calendar day before t.
func previousLocalDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, -1)
}
