package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attenda/timeclock-backend-go/internal/domain/punch"
	"github.com/attenda/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `id, employee_id, check_in_date, check_in_time, location_name, record_type, action_description, created_at, updated_at`

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (employee_id, check_in_date, check_in_time, location_name, record_type, action_description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + punchColumns

	var created punch.Punch
	err := q.QueryRow(ctx, query,
		p.EmployeeID,
		p.CheckInDate,
		p.CheckInTime,
		p.LocationName,
		p.RecordType,
		p.ActionDescription,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.CheckInDate,
		&created.CheckInTime,
		&created.LocationName,
		&created.RecordType,
		&created.ActionDescription,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to insert punch: %w", err)
	}

	return created, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id int64) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + ` FROM punches WHERE id = $1`

	var p punch.Punch
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.EmployeeID,
		&p.CheckInDate,
		&p.CheckInTime,
		&p.LocationName,
		&p.RecordType,
		&p.ActionDescription,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to get punch: %w", err)
	}

	return p, nil
}

// ListByDateRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE check_in_date BETWEEN $1 AND $2
		ORDER BY check_in_date, check_in_time, id
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE ($1 = '' OR employee_id = $1)
		AND ($2::date IS NULL OR check_in_date >= $2)
		AND ($3::date IS NULL OR check_in_date <= $3)`

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM punches` + where
	err := q.QueryRow(ctx, countQuery, filter.EmployeeID, nullableDate(filter.StartDate), nullableDate(filter.EndDate)).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	query := `SELECT ` + punchColumns + ` FROM punches` + where + `
		ORDER BY check_in_date DESC, check_in_time DESC, id DESC
		LIMIT $4 OFFSET $5`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, filter.EmployeeID, nullableDate(filter.StartDate), nullableDate(filter.EndDate), filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	punches, err := scanPunches(rows)
	if err != nil {
		return nil, 0, err
	}

	return punches, totalCount, nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}

// nullableDate maps the zero time to NULL so an unset filter bound matches
// every row.
func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func scanPunches(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID,
			&p.EmployeeID,
			&p.CheckInDate,
			&p.CheckInTime,
			&p.LocationName,
			&p.RecordType,
			&p.ActionDescription,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punches: %w", err)
	}

	return punches, nil
}
