package payroll

import (
	"context"
)

// PayrollRepository defines data access for payroll settings.
type PayrollRepository interface {
	// GetSettings retrieves the configured rates; returns
	// ErrPayrollSettingsNotFound when none have been stored yet
	GetSettings(ctx context.Context) (PayrollSettings, error)

	// UpsertSettings stores the rates, replacing any previous row
	UpsertSettings(ctx context.Context, settings PayrollSettings) (PayrollSettings, error)
}
