package workhours

import "errors"

// Work-hours domain errors
var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrEmptyEmployeeID  = errors.New("employee id is required")
)
