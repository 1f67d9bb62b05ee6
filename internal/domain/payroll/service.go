package payroll

import (
	"context"
)

// PayrollService defines business logic for pay computation.
type PayrollService interface {
	// GetSettings retrieves the configured rates, falling back to defaults
	GetSettings(ctx context.Context) (PayrollSettingsResponse, error)

	// UpdateSettings applies partial rate updates
	UpdateSettings(ctx context.Context, req UpdatePayrollSettingsRequest) (PayrollSettingsResponse, error)

	// ComputePay turns an employee's hours for a period into gross pay
	ComputePay(ctx context.Context, req ComputePayRequest) (PayComputationResponse, error)
}
