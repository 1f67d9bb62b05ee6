package punch

import (
	"context"
)

// PunchService defines business logic for recording and managing punches.
type PunchService interface {
	// RecordPunch stores a punch coming from the QR scan path
	RecordPunch(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)

	// GetPunch retrieves a single punch by id
	GetPunch(ctx context.Context, id int64) (PunchResponse, error)

	// ListPunches retrieves punches with filters and pagination
	ListPunches(ctx context.Context, filter PunchFilter) (ListPunchResponse, error)

	// DeletePunch removes a punch record
	DeletePunch(ctx context.Context, id int64) error

	// ImportPunches bulk-loads heterogeneous map-shaped payloads, skipping
	// entries that lack an employee id, date or time
	ImportPunches(ctx context.Context, batch []map[string]any) (ImportResult, error)
}
