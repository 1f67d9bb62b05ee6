package punch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	workhoursService "github.com/attenda/timeclock-backend-go/internal/service/workhours"
)

type PunchServiceImpl struct {
	punchRepo punch.PunchRepository
}

func NewPunchService(punchRepo punch.PunchRepository) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo: punchRepo,
	}
}

// RecordPunch implements punch.PunchService.
func (s *PunchServiceImpl) RecordPunch(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	timeOfDay, err := time.Parse("15:04:05", req.Time)
	if err != nil {
		timeOfDay, _ = time.Parse("15:04", req.Time)
	}

	created, err := s.punchRepo.Create(ctx, punch.Punch{
		EmployeeID:        req.EmployeeID,
		CheckInDate:       date,
		CheckInTime:       timeOfDay,
		LocationName:      req.LocationName,
		RecordType:        req.RecordType,
		ActionDescription: req.ActionDescription,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	return mapPunchToResponse(created), nil
}

// GetPunch implements punch.PunchService.
func (s *PunchServiceImpl) GetPunch(ctx context.Context, id int64) (punch.PunchResponse, error) {
	rec, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, punch.ErrPunchNotFound) {
			return punch.PunchResponse{}, punch.ErrPunchNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch record: %w", err)
	}
	return mapPunchToResponse(rec), nil
}

// ListPunches implements punch.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 50
	}

	punches, total, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punch records: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, mapPunchToResponse(p))
	}

	return punch.ListPunchResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Punches:    responses,
	}, nil
}

// DeletePunch implements punch.PunchService.
func (s *PunchServiceImpl) DeletePunch(ctx context.Context, id int64) error {
	if err := s.punchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, punch.ErrPunchNotFound) {
			return punch.ErrPunchNotFound
		}
		return fmt.Errorf("failed to delete punch record: %w", err)
	}
	return nil
}

// ImportPunches implements punch.PunchService. Entries that cannot be
// adapted (missing employee id, date or time, or unparseable values) are
// counted as skipped; one bad entry never aborts the batch.
func (s *PunchServiceImpl) ImportPunches(ctx context.Context, batch []map[string]any) (punch.ImportResult, error) {
	var result punch.ImportResult

	for _, raw := range batch {
		rec, ok := workhoursService.PunchFromMap(raw)
		if !ok {
			result.Skipped++
			continue
		}
		rec.ID = 0 // ids are assigned by storage, never trusted from imports

		if _, err := s.punchRepo.Create(ctx, rec); err != nil {
			slog.Error("failed to store imported punch", "employee_id", rec.EmployeeID, "error", err)
			result.Skipped++
			continue
		}
		result.Imported++
	}

	if result.Imported == 0 && len(batch) > 0 {
		return result, punch.ErrNothingToImport
	}
	return result, nil
}

func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		Date:              p.CheckInDate.Format("2006-01-02"),
		Time:              p.CheckInTime.Format("15:04:05"),
		LocationName:      p.LocationName,
		RecordType:        p.RecordType,
		ActionDescription: p.ActionDescription,
		CreatedAt:         p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
