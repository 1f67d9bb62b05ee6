package report

import (
	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
	"github.com/attenda/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE HOURS REPORT
// ========================================

type EmployeeHoursReportRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *EmployeeHoursReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = append(errs, validateDateRange(r.StartDate, r.EndDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeHoursReport struct {
	ReportID    string `json:"report_id"`
	GeneratedAt string `json:"generated_at"`

	workhours.EmployeeReport
}

// ========================================
// ALL EMPLOYEES HOURS REPORT
// ========================================

type AllEmployeesHoursReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *AllEmployeesHoursReportRequest) Validate() error {
	errs := validateDateRange(r.StartDate, r.EndDate)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AllEmployeesHoursReport struct {
	ReportID    string `json:"report_id"`
	GeneratedAt string `json:"generated_at"`

	workhours.MultiEmployeeReport
}

func validateDateRange(startDate, endDate string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(startDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(endDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 {
		if _, _, ok := validator.DateRange(startDate, endDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	return errs
}
