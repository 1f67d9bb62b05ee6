package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	"github.com/attenda/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PunchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Create implements PunchHandler.
func (h *PunchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req punch.CreatePunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.punchService.RecordPunch(r.Context(), req)
	if err != nil {
		slog.Error("Create punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", created)
}

// GetByID implements PunchHandler.
func (h *PunchHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid punch id", nil)
		return
	}

	p, err := h.punchService.GetPunch(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := punch.PunchFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	if v := r.URL.Query().Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return
		}
		filter.StartDate = t
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return
		}
		filter.EndDate = t
	}
	if v := r.URL.Query().Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	list, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		slog.Error("List punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Punches, response.NewMeta(list.Page, list.Limit, list.TotalCount))
}

// Delete implements PunchHandler.
func (h *PunchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid punch id", nil)
		return
	}

	if err := h.punchService.DeletePunch(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", nil)
}

// Import implements PunchHandler.
func (h *PunchHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var batch []map[string]any

	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		slog.Error("Import punches decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.ImportPunches(r.Context(), batch)
	if err != nil {
		slog.Error("Import punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}
