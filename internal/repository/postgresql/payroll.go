package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attenda/timeclock-backend-go/internal/domain/payroll"
	"github.com/attenda/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// GetSettings implements payroll.PayrollRepository. A single settings row is
// kept; id 1 is the only row ever written.
func (r *payrollRepositoryImpl) GetSettings(ctx context.Context) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, regular_rate, overtime_multiplier, sp_rate, pw_rate, pt_rate, updated_at
		FROM payroll_settings
		WHERE id = 1
	`

	var settings payroll.PayrollSettings
	err := q.QueryRow(ctx, query).Scan(
		&settings.ID,
		&settings.RegularRate,
		&settings.OvertimeMultiplier,
		&settings.SPRate,
		&settings.PWRate,
		&settings.PTRate,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollSettings{}, payroll.ErrPayrollSettingsNotFound
		}
		return payroll.PayrollSettings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return settings, nil
}

// UpsertSettings implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpsertSettings(ctx context.Context, settings payroll.PayrollSettings) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (id, regular_rate, overtime_multiplier, sp_rate, pw_rate, pt_rate, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			regular_rate = EXCLUDED.regular_rate,
			overtime_multiplier = EXCLUDED.overtime_multiplier,
			sp_rate = EXCLUDED.sp_rate,
			pw_rate = EXCLUDED.pw_rate,
			pt_rate = EXCLUDED.pt_rate,
			updated_at = NOW()
		RETURNING id, regular_rate, overtime_multiplier, sp_rate, pw_rate, pt_rate, updated_at
	`

	var stored payroll.PayrollSettings
	err := q.QueryRow(ctx, query,
		settings.RegularRate,
		settings.OvertimeMultiplier,
		settings.SPRate,
		settings.PWRate,
		settings.PTRate,
	).Scan(
		&stored.ID,
		&stored.RegularRate,
		&stored.OvertimeMultiplier,
		&stored.SPRate,
		&stored.PWRate,
		&stored.PTRate,
		&stored.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollSettings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return stored, nil
}
