package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"datedim/database"
	"datedim/models"
)

// PayPeriodRepository persists rows of the pay_periods table
type PayPeriodRepository struct {
	db *database.DB
}

// NewPayPeriodRepository creates a new pay period repository
func NewPayPeriodRepository(db *database.DB) *PayPeriodRepository {
	return &PayPeriodRepository{db: db}
}

var payPeriodColumns = []string{
	"pay_period_id", "start_date", "end_date", "pp_index", "pp_number",
	"year_start", "year_end", "is_split_year", "holidays",
	"work_days_in_year_start", "work_days_in_year_end",
	"hours_in_year_start", "hours_in_year_end", "pay_date", "pay_year",
}

// BulkInsert copies all pay period rows into the table within the given
// transaction and returns the number of rows written.
func (r *PayPeriodRepository) BulkInsert(ctx context.Context, tx pgx.Tx, periods []*models.PayPeriod) (int64, error) {
	rows := make([][]any, len(periods))
	for i, p := range periods {
		rows[i] = []any{
			p.ID, p.StartDate, p.EndDate, p.PPIndex, p.PPNumber,
			p.YearStart, p.YearEnd, p.IsSplitYear, p.Holidays,
			p.WorkDaysInYearStart, p.WorkDaysInYearEnd,
			p.HoursInYearStart, p.HoursInYearEnd, p.PayDate, p.PayYear,
		}
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"pay_periods"}, payPeriodColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert pay periods: %w", err)
	}
	return n, nil
}

// ListByYearStart returns the periods starting in a year, ordered by
// their sequence number
func (r *PayPeriodRepository) ListByYearStart(ctx context.Context, year int) ([]*models.PayPeriod, error) {
	query := `
		SELECT pay_period_id, start_date, end_date, pp_index, pp_number,
		       year_start, year_end, is_split_year, holidays,
		       work_days_in_year_start, work_days_in_year_end,
		       hours_in_year_start, hours_in_year_end, pay_date, pay_year
		FROM pay_periods
		WHERE year_start = $1
		ORDER BY pp_number
	`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods for %d: %w", year, err)
	}
	defer rows.Close()

	var periods []*models.PayPeriod
	for rows.Next() {
		var p models.PayPeriod
		if err := rows.Scan(
			&p.ID,
			&p.StartDate,
			&p.EndDate,
			&p.PPIndex,
			&p.PPNumber,
			&p.YearStart,
			&p.YearEnd,
			&p.IsSplitYear,
			&p.Holidays,
			&p.WorkDaysInYearStart,
			&p.WorkDaysInYearEnd,
			&p.HoursInYearStart,
			&p.HoursInYearEnd,
			&p.PayDate,
			&p.PayYear,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay period: %w", err)
		}
		periods = append(periods, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pay periods for %d: %w", year, err)
	}
	return periods, nil
}

// Count returns the number of pay period rows
func (r *PayPeriodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pay_periods`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pay periods: %w", err)
	}
	return count, nil
}
