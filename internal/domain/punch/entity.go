package punch

import (
	"time"
)

// Punch is one recorded attendance event as captured at the clock. The
// employee id is stored exactly as scanned and may carry a work-type suffix
// ("1234 SP"); direction is inferred later from the action description, not
// stored here.
type Punch struct {
	ID                int64
	EmployeeID        string
	CheckInDate       time.Time
	CheckInTime       time.Time
	LocationName      string
	RecordType        *string
	ActionDescription *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
