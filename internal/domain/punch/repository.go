package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for attendance punches.
type PunchRepository interface {
	// Create stores a new punch record
	Create(ctx context.Context, p Punch) (Punch, error)

	// GetByID retrieves a single punch
	GetByID(ctx context.Context, id int64) (Punch, error)

	// ListByDateRange retrieves all punches whose date falls inside the
	// inclusive range, ordered by date then time
	ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]Punch, error)

	// List retrieves punches with filters and pagination
	List(ctx context.Context, filter PunchFilter) ([]Punch, int64, error)

	// Delete removes a punch record
	Delete(ctx context.Context, id int64) error
}
