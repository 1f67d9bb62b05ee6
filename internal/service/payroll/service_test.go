package payroll

import (
	"context"
	"testing"

	"github.com/attenda/timeclock-backend-go/internal/domain/payroll"
	"github.com/attenda/timeclock-backend-go/internal/domain/report"
	"github.com/attenda/timeclock-backend-go/internal/domain/workhours"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayrollRepo struct {
	settings *payroll.PayrollSettings
	upserted *payroll.PayrollSettings
}

func (r *stubPayrollRepo) GetSettings(ctx context.Context) (payroll.PayrollSettings, error) {
	if r.settings == nil {
		return payroll.PayrollSettings{}, payroll.ErrPayrollSettingsNotFound
	}
	return *r.settings, nil
}

func (r *stubPayrollRepo) UpsertSettings(ctx context.Context, settings payroll.PayrollSettings) (payroll.PayrollSettings, error) {
	r.upserted = &settings
	return settings, nil
}

type stubReportService struct {
	report report.EmployeeHoursReport
	err    error
}

func (s *stubReportService) GenerateEmployeeHoursReport(ctx context.Context, req report.EmployeeHoursReportRequest) (report.EmployeeHoursReport, error) {
	return s.report, s.err
}

func (s *stubReportService) GenerateAllEmployeesHoursReport(ctx context.Context, req report.AllEmployeesHoursReportRequest) (report.AllEmployeesHoursReport, error) {
	return report.AllEmployeesHoursReport{}, nil
}

func decptr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	svc := NewPayrollService(&stubPayrollRepo{}, &stubReportService{})

	resp, err := svc.GetSettings(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.RegularRate.IsZero())
	assert.True(t, resp.OvertimeMultiplier.Equal(decimal.RequireFromString("1.5")))
}

func TestUpdateSettingsAppliesPartialUpdate(t *testing.T) {
	current := payroll.DefaultSettings()
	current.RegularRate = decimal.RequireFromString("20")
	repo := &stubPayrollRepo{settings: &current}
	svc := NewPayrollService(repo, &stubReportService{})

	resp, err := svc.UpdateSettings(context.Background(), payroll.UpdatePayrollSettingsRequest{
		SPRate: decptr("25.50"),
	})
	require.NoError(t, err)

	assert.True(t, resp.RegularRate.Equal(decimal.RequireFromString("20")), "untouched rate should survive")
	assert.True(t, resp.SPRate.Equal(decimal.RequireFromString("25.50")))
	require.NotNil(t, repo.upserted)
}

func TestUpdateSettingsRejectsNegativeRate(t *testing.T) {
	svc := NewPayrollService(&stubPayrollRepo{}, &stubReportService{})

	_, err := svc.UpdateSettings(context.Background(), payroll.UpdatePayrollSettingsRequest{
		PWRate: decptr("-1"),
	})
	assert.ErrorIs(t, err, payroll.ErrNegativeRate)
}

func TestComputePayMultipliesRatesByHours(t *testing.T) {
	settings := payroll.PayrollSettings{
		RegularRate:        decimal.RequireFromString("20"),
		OvertimeMultiplier: decimal.RequireFromString("1.5"),
		SPRate:             decimal.RequireFromString("22"),
		PWRate:             decimal.RequireFromString("18"),
		PTRate:             decimal.RequireFromString("15"),
	}
	reports := &stubReportService{
		report: report.EmployeeHoursReport{
			EmployeeReport: workhours.EmployeeReport{
				BaseEmployeeID: "5001",
				StartDate:      "2024-01-01",
				EndDate:        "2024-01-07",
				GrandTotals: workhours.GrandTotals{
					RegularHours:  40,
					OvertimeHours: 5,
					SPHours:       3,
					PWHours:       0,
					PTHours:       2,
				},
			},
		},
	}
	svc := NewPayrollService(&stubPayrollRepo{settings: &settings}, reports)

	resp, err := svc.ComputePay(context.Background(), payroll.ComputePayRequest{
		EmployeeID: "5001",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-07",
	})
	require.NoError(t, err)

	assert.Equal(t, "5001", resp.EmployeeID)
	assert.True(t, resp.RegularPay.Equal(decimal.RequireFromString("800")), "40h * 20")
	assert.True(t, resp.OvertimePay.Equal(decimal.RequireFromString("150")), "5h * 20 * 1.5")
	assert.True(t, resp.SPPay.Equal(decimal.RequireFromString("66")))
	assert.True(t, resp.PWPay.IsZero())
	assert.True(t, resp.PTPay.Equal(decimal.RequireFromString("30")))
	assert.True(t, resp.GrossPay.Equal(decimal.RequireFromString("1046")))
}

func TestComputePayValidatesRequest(t *testing.T) {
	svc := NewPayrollService(&stubPayrollRepo{}, &stubReportService{})

	_, err := svc.ComputePay(context.Background(), payroll.ComputePayRequest{
		EmployeeID: "",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-07",
	})
	assert.Error(t, err)
}
