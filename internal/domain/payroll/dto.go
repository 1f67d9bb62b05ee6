package payroll

import (
	"github.com/attenda/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollSettingsResponse struct {
	RegularRate        decimal.Decimal `json:"regular_rate"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	SPRate             decimal.Decimal `json:"sp_rate"`
	PWRate             decimal.Decimal `json:"pw_rate"`
	PTRate             decimal.Decimal `json:"pt_rate"`
}

type UpdatePayrollSettingsRequest struct {
	RegularRate        *decimal.Decimal `json:"regular_rate,omitempty"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier,omitempty"`
	SPRate             *decimal.Decimal `json:"sp_rate,omitempty"`
	PWRate             *decimal.Decimal `json:"pw_rate,omitempty"`
	PTRate             *decimal.Decimal `json:"pt_rate,omitempty"`
}

func (r *UpdatePayrollSettingsRequest) Validate() error {
	for _, rate := range []*decimal.Decimal{r.RegularRate, r.OvertimeMultiplier, r.SPRate, r.PWRate, r.PTRate} {
		if rate != nil && rate.IsNegative() {
			return ErrNegativeRate
		}
	}
	return nil
}

type ComputePayRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *ComputePayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, _, ok := validator.DateRange(r.StartDate, r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "start_date and end_date must form a valid YYYY-MM-DD range",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayComputationResponse struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	SPHours       float64 `json:"sp_hours"`
	PWHours       float64 `json:"pw_hours"`
	PTHours       float64 `json:"pt_hours"`

	RegularPay  decimal.Decimal `json:"regular_pay"`
	OvertimePay decimal.Decimal `json:"overtime_pay"`
	SPPay       decimal.Decimal `json:"sp_pay"`
	PWPay       decimal.Decimal `json:"pw_pay"`
	PTPay       decimal.Decimal `json:"pt_pay"`
	GrossPay    decimal.Decimal `json:"gross_pay"`
}
