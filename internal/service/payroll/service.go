package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/attenda/timeclock-backend-go/internal/domain/payroll"
	"github.com/attenda/timeclock-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo   payroll.PayrollRepository
	reportService report.ReportService
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, reportService report.ReportService) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:   payrollRepo,
		reportService: reportService,
	}
}

// GetSettings implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.PayrollSettingsResponse, error) {
	settings, err := s.settingsOrDefault(ctx)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}
	return mapSettingsToResponse(settings), nil
}

// UpdateSettings implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdatePayrollSettingsRequest) (payroll.PayrollSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	current, err := s.settingsOrDefault(ctx)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	if req.RegularRate != nil {
		current.RegularRate = *req.RegularRate
	}
	if req.OvertimeMultiplier != nil {
		current.OvertimeMultiplier = *req.OvertimeMultiplier
	}
	if req.SPRate != nil {
		current.SPRate = *req.SPRate
	}
	if req.PWRate != nil {
		current.PWRate = *req.PWRate
	}
	if req.PTRate != nil {
		current.PTRate = *req.PTRate
	}

	updated, err := s.payrollRepo.UpsertSettings(ctx, current)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, fmt.Errorf("failed to store payroll settings: %w", err)
	}

	return mapSettingsToResponse(updated), nil
}

// ComputePay implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputePay(ctx context.Context, req payroll.ComputePayRequest) (payroll.PayComputationResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayComputationResponse{}, err
	}

	settings, err := s.settingsOrDefault(ctx)
	if err != nil {
		return payroll.PayComputationResponse{}, err
	}

	hoursReport, err := s.reportService.GenerateEmployeeHoursReport(ctx, report.EmployeeHoursReportRequest{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		return payroll.PayComputationResponse{}, fmt.Errorf("failed to build hours report: %w", err)
	}

	totals := hoursReport.GrandTotals
	overtimeRate := settings.RegularRate.Mul(settings.OvertimeMultiplier)

	regularPay := settings.RegularRate.Mul(decimal.NewFromFloat(totals.RegularHours))
	overtimePay := overtimeRate.Mul(decimal.NewFromFloat(totals.OvertimeHours))
	spPay := settings.SPRate.Mul(decimal.NewFromFloat(totals.SPHours))
	pwPay := settings.PWRate.Mul(decimal.NewFromFloat(totals.PWHours))
	ptPay := settings.PTRate.Mul(decimal.NewFromFloat(totals.PTHours))

	return payroll.PayComputationResponse{
		EmployeeID:    hoursReport.BaseEmployeeID,
		PeriodStart:   hoursReport.StartDate,
		PeriodEnd:     hoursReport.EndDate,
		RegularHours:  totals.RegularHours,
		OvertimeHours: totals.OvertimeHours,
		SPHours:       totals.SPHours,
		PWHours:       totals.PWHours,
		PTHours:       totals.PTHours,
		RegularPay:    regularPay.Round(2),
		OvertimePay:   overtimePay.Round(2),
		SPPay:         spPay.Round(2),
		PWPay:         pwPay.Round(2),
		PTPay:         ptPay.Round(2),
		GrossPay:      regularPay.Add(overtimePay).Add(spPay).Add(pwPay).Add(ptPay).Round(2),
	}, nil
}

func (s *PayrollServiceImpl) settingsOrDefault(ctx context.Context) (payroll.PayrollSettings, error) {
	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollSettingsNotFound) {
			return payroll.DefaultSettings(), nil
		}
		return payroll.PayrollSettings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}
	return settings, nil
}

func mapSettingsToResponse(settings payroll.PayrollSettings) payroll.PayrollSettingsResponse {
	return payroll.PayrollSettingsResponse{
		RegularRate:        settings.RegularRate,
		OvertimeMultiplier: settings.OvertimeMultiplier,
		SPRate:             settings.SPRate,
		PWRate:             settings.PWRate,
		PTRate:             settings.PTRate,
	}
}
