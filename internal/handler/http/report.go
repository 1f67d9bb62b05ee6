package http

import (
	"log/slog"
	"net/http"

	"github.com/attenda/timeclock-backend-go/internal/domain/report"
	"github.com/attenda/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	GetEmployeeHours(w http.ResponseWriter, r *http.Request)
	GetAllEmployeesHours(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// GetEmployeeHours implements ReportHandler.
func (h *ReportHandlerImpl) GetEmployeeHours(w http.ResponseWriter, r *http.Request) {
	req := report.EmployeeHoursReportRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	hoursReport, err := h.reportService.GenerateEmployeeHoursReport(r.Context(), req)
	if err != nil {
		slog.Error("Employee hours report error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, hoursReport)
}

// GetAllEmployeesHours implements ReportHandler.
func (h *ReportHandlerImpl) GetAllEmployeesHours(w http.ResponseWriter, r *http.Request) {
	req := report.AllEmployeesHoursReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	hoursReport, err := h.reportService.GenerateAllEmployeesHoursReport(r.Context(), req)
	if err != nil {
		slog.Error("All employees hours report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, hoursReport)
}
