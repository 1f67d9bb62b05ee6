package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attenda/timeclock-backend-go/internal/domain/payroll"
	"github.com/attenda/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	ComputePay(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetSettings implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.payrollService.GetSettings(r.Context())
	if err != nil {
		slog.Error("Get payroll settings error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateSettings implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayrollSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payroll settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.payrollService.UpdateSettings(r.Context(), req)
	if err != nil {
		slog.Error("Update payroll settings error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll settings updated", settings)
}

// ComputePay implements PayrollHandler.
func (h *PayrollHandlerImpl) ComputePay(w http.ResponseWriter, r *http.Request) {
	req := payroll.ComputePayRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	pay, err := h.payrollService.ComputePay(r.Context(), req)
	if err != nil {
		slog.Error("Compute pay error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, pay)
}
