package report

import (
	"context"
)

// ReportService defines business logic for hours reporting. Fetching the raw
// punches and rendering the result belong to the callers; the service only
// orchestrates the calculation.
type ReportService interface {
	// GenerateEmployeeHoursReport builds the hours report for one employee
	GenerateEmployeeHoursReport(ctx context.Context, req EmployeeHoursReportRequest) (EmployeeHoursReport, error)

	// GenerateAllEmployeesHoursReport builds hours reports for every
	// employee who punched inside the period
	GenerateAllEmployeesHoursReport(ctx context.Context, req AllEmployeesHoursReportRequest) (AllEmployeesHoursReport, error)
}
