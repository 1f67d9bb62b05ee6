package report

import (
	"context"
	"fmt"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	"github.com/attenda/timeclock-backend-go/internal/domain/report"
	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	punchRepo  punch.PunchRepository
	calculator workhours.Calculator
}

func NewReportService(punchRepo punch.PunchRepository, calculator workhours.Calculator) report.ReportService {
	return &ReportServiceImpl{
		punchRepo:  punchRepo,
		calculator: calculator,
	}
}

// GenerateEmployeeHoursReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateEmployeeHoursReport(ctx context.Context, req report.EmployeeHoursReportRequest) (report.EmployeeHoursReport, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeHoursReport{}, err
	}

	startDate, _ := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	endDate, _ := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)

	records, err := s.punchRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return report.EmployeeHoursReport{}, fmt.Errorf("failed to fetch punch records: %w", err)
	}

	employeeReport, err := s.calculator.CalculateEmployeeHours(req.EmployeeID, startDate, endDate, records)
	if err != nil {
		return report.EmployeeHoursReport{}, fmt.Errorf("failed to calculate employee hours: %w", err)
	}

	return report.EmployeeHoursReport{
		ReportID:       uuid.NewString(),
		GeneratedAt:    time.Now().Format(time.RFC3339),
		EmployeeReport: employeeReport,
	}, nil
}

// GenerateAllEmployeesHoursReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAllEmployeesHoursReport(ctx context.Context, req report.AllEmployeesHoursReportRequest) (report.AllEmployeesHoursReport, error) {
	if err := req.Validate(); err != nil {
		return report.AllEmployeesHoursReport{}, err
	}

	startDate, _ := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	endDate, _ := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)

	records, err := s.punchRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return report.AllEmployeesHoursReport{}, fmt.Errorf("failed to fetch punch records: %w", err)
	}

	multiReport, err := s.calculator.CalculateAllEmployeesHours(startDate, endDate, records)
	if err != nil {
		return report.AllEmployeesHoursReport{}, fmt.Errorf("failed to calculate hours for all employees: %w", err)
	}

	return report.AllEmployeesHoursReport{
		ReportID:            uuid.NewString(),
		GeneratedAt:         time.Now().Format(time.RFC3339),
		MultiEmployeeReport: multiReport,
	}, nil
}
