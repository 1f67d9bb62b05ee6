package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollSettings holds the hourly rates used to turn an hours report into
// gross pay. Each work category is rated independently; overtime is paid at
// the regular rate times the multiplier.
type PayrollSettings struct {
	ID                 int64
	RegularRate        decimal.Decimal
	OvertimeMultiplier decimal.Decimal
	SPRate             decimal.Decimal
	PWRate             decimal.Decimal
	PTRate             decimal.Decimal
	UpdatedAt          time.Time
}

// DefaultSettings returns the rates used before any are configured.
func DefaultSettings() PayrollSettings {
	return PayrollSettings{
		RegularRate:        decimal.Zero,
		OvertimeMultiplier: decimal.NewFromFloat(1.5),
		SPRate:             decimal.Zero,
		PWRate:             decimal.Zero,
		PTRate:             decimal.Zero,
	}
}
