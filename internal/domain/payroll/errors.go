package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollSettingsNotFound = errors.New("payroll settings not found")
	ErrNegativeRate            = errors.New("hourly rates must not be negative")
)
