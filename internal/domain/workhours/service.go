package workhours

import (
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
)

// Calculator reconstructs worked hours from a raw batch of attendance
// punches. Implementations are pure: they perform no I/O, hold no state
// between calls, and are safe to invoke concurrently.
type Calculator interface {
	// CalculateEmployeeHours builds the daily/weekly/grand-total report for
	// one base employee over an inclusive date range. Records for other
	// employees in the batch are ignored.
	CalculateEmployeeHours(employeeID string, startDate, endDate time.Time, records []punch.Punch) (EmployeeReport, error)

	// CalculateAllEmployeesHours discovers every base employee present in the
	// batch and builds a report for each. One employee's failure is logged
	// and replaced with an all-zero report; it never aborts the batch.
	CalculateAllEmployeesHours(startDate, endDate time.Time, records []punch.Punch) (MultiEmployeeReport, error)
}
