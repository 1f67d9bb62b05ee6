package cron

import (
	"context"
	"testing"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	workhoursService "github.com/attenda/timeclock-backend-go/internal/service/workhours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPunchRepo struct {
	punches     []punch.Punch
	queriedFrom time.Time
	queriedTo   time.Time
}

func (r *stubPunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	return p, nil
}

func (r *stubPunchRepo) GetByID(ctx context.Context, id int64) (punch.Punch, error) {
	return punch.Punch{}, punch.ErrPunchNotFound
}

func (r *stubPunchRepo) ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]punch.Punch, error) {
	r.queriedFrom = startDate
	r.queriedTo = endDate
	return r.punches, nil
}

func (r *stubPunchRepo) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, int64, error) {
	return r.punches, int64(len(r.punches)), nil
}

func (r *stubPunchRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestPreviousLocalDay(t *testing.T) {
	now := time.Date(2024, 1, 15, 1, 30, 0, 0, time.Local)

	day := previousLocalDay(now)

	assert.Equal(t, "2024-01-14", day.Format("2006-01-02"))
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, time.Local, day.Location())
}

func TestPreviousLocalDayUsesLocalCalendar(t *testing.T) {
	// 01:30 local expressed in another zone must still resolve to the
	// local previous day, not the other zone's.
	local := time.Date(2024, 1, 15, 1, 30, 0, 0, time.Local)
	elsewhere := local.In(time.FixedZone("elsewhere", -10*3600))

	assert.Equal(t, "2024-01-14", previousLocalDay(elsewhere).Format("2006-01-02"))
}

func TestScanDayQueriesTheGivenDay(t *testing.T) {
	day := time.Date(2024, 1, 14, 0, 0, 0, 0, time.Local)
	checkout := "Check-out at main entrance"
	repo := &stubPunchRepo{
		punches: []punch.Punch{
			{
				ID:          1,
				EmployeeID:  "5001",
				CheckInDate: day,
				CheckInTime: time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC),
			},
			{
				ID:                2,
				EmployeeID:        "5001",
				CheckInDate:       day,
				CheckInTime:       time.Date(0, 1, 1, 16, 0, 0, 0, time.UTC),
				ActionDescription: &checkout,
			},
		},
	}
	jobs := NewTimeclockJobs(repo, workhoursService.NewCalculator())

	err := jobs.scanDay(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, day, repo.queriedFrom)
	assert.Equal(t, day, repo.queriedTo)
}

func TestScanDaySurvivesUnmatchedPunches(t *testing.T) {
	day := time.Date(2024, 1, 14, 0, 0, 0, 0, time.Local)
	repo := &stubPunchRepo{
		punches: []punch.Punch{
			{
				ID:          1,
				EmployeeID:  "5001",
				CheckInDate: day,
				CheckInTime: time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC),
			},
		},
	}
	jobs := NewTimeclockJobs(repo, workhoursService.NewCalculator())

	// A lone check-in flags the day but must not fail the job.
	assert.NoError(t, jobs.scanDay(context.Background(), day))
}
