package punch

import (
	"time"

	"github.com/attenda/timeclock-backend-go/internal/pkg/validator"
)

type CreatePunchRequest struct {
	EmployeeID        string  `json:"employee_id"`
	Date              string  `json:"date"`
	Time              string  `json:"time"`
	LocationName      string  `json:"location_name"`
	RecordType        *string `json:"record_type,omitempty"`
	ActionDescription *string `json:"action_description,omitempty"`
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be digits with an optional SP/PW/PT suffix",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidTime(r.Time); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM or HH:MM:SS format",
		})
	}

	if validator.IsEmpty(r.LocationName) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_name",
			Message: "location_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID                int64   `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	Date              string  `json:"date"`
	Time              string  `json:"time"`
	LocationName      string  `json:"location_name"`
	RecordType        *string `json:"record_type,omitempty"`
	ActionDescription *string `json:"action_description,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

type PunchFilter struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Page       int
	Limit      int
}

type ListPunchResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Punches    []PunchResponse `json:"punches"`
}

// ImportResult summarizes a bulk import of raw punch payloads. Malformed
// entries are skipped, not fatal.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
