package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"datedim/database"
	"datedim/models"
)

// YearRepository persists rows of the years table
type YearRepository struct {
	db *database.DB
}

// NewYearRepository creates a new year repository
func NewYearRepository(db *database.DB) *YearRepository {
	return &YearRepository{db: db}
}

var yearColumns = []string{
	"year_year", "total_days", "work_days", "holidays", "week_days",
	"weekend_days", "work_hours", "pay_periods", "is_leap",
	"is_pres_election", "is_inauguration",
}

// BulkInsert copies all year rows into the table within the given
// transaction and returns the number of rows written.
func (r *YearRepository) BulkInsert(ctx context.Context, tx pgx.Tx, years []*models.Year) (int64, error) {
	rows := make([][]any, len(years))
	for i, y := range years {
		rows[i] = []any{
			y.Year, y.TotalDays, y.WorkDays, y.Holidays, y.WeekDays,
			y.WeekendDays, y.WorkHours, y.PayPeriods, y.IsLeap,
			y.IsPresElection, y.IsInauguration,
		}
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"years"}, yearColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert years: %w", err)
	}
	return n, nil
}

// GetByYear returns the row for a calendar year, or nil if absent
func (r *YearRepository) GetByYear(ctx context.Context, year int) (*models.Year, error) {
	query := `
		SELECT year_year, total_days, work_days, holidays, week_days,
		       weekend_days, work_hours, pay_periods, is_leap,
		       is_pres_election, is_inauguration
		FROM years
		WHERE year_year = $1
	`

	var y models.Year
	err := r.db.QueryRow(ctx, query, year).Scan(
		&y.Year,
		&y.TotalDays,
		&y.WorkDays,
		&y.Holidays,
		&y.WeekDays,
		&y.WeekendDays,
		&y.WorkHours,
		&y.PayPeriods,
		&y.IsLeap,
		&y.IsPresElection,
		&y.IsInauguration,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get year %d: %w", year, err)
	}
	return &y, nil
}

// Count returns the number of year rows
func (r *YearRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM years`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count years: %w", err)
	}
	return count, nil
}
