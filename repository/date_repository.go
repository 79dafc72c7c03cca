package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"datedim/database"
	"datedim/models"
)

// DateRepository persists rows of the dates table
type DateRepository struct {
	db *database.DB
}

// NewDateRepository creates a new date repository
func NewDateRepository(db *database.DB) *DateRepository {
	return &DateRepository{db: db}
}

// date_id is an identity column and is not copied
var dateColumns = []string{
	"date_date", "date_year", "date_month", "date_day", "date_day_of_week",
	"is_last_day_of_month", "is_weekend", "is_holiday", "is_work_day",
	"is_pay_day", "day_of_week_name", "name_of_month", "cy_quarter",
	"cy_day", "cy_week",
}

// BulkInsert copies all date rows into the table within the given
// transaction and returns the number of rows written. A duplicate
// date_date fails the whole copy.
func (r *DateRepository) BulkInsert(ctx context.Context, tx pgx.Tx, dates []*models.Date) (int64, error) {
	rows := make([][]any, len(dates))
	for i, d := range dates {
		rows[i] = []any{
			d.Date, d.Year, d.Month, d.Day, d.DayOfWeek,
			d.IsLastDayOfMonth, d.IsWeekend, d.IsHoliday, d.IsWorkDay,
			d.IsPayDay, d.DayOfWeekName, d.NameOfMonth, d.CYQuarter,
			d.CYDay, d.CYWeek,
		}
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"dates"}, dateColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert dates: %w", err)
	}
	return n, nil
}

// GetByDate returns the row for a calendar day, or nil if absent
func (r *DateRepository) GetByDate(ctx context.Context, date time.Time) (*models.Date, error) {
	query := `
		SELECT date_id, date_date, date_year, date_month, date_day,
		       date_day_of_week, is_last_day_of_month, is_weekend,
		       is_holiday, is_work_day, is_pay_day, day_of_week_name,
		       name_of_month, cy_quarter, cy_day, cy_week
		FROM dates
		WHERE date_date = $1
	`

	var d models.Date
	err := r.db.QueryRow(ctx, query, date).Scan(
		&d.ID,
		&d.Date,
		&d.Year,
		&d.Month,
		&d.Day,
		&d.DayOfWeek,
		&d.IsLastDayOfMonth,
		&d.IsWeekend,
		&d.IsHoliday,
		&d.IsWorkDay,
		&d.IsPayDay,
		&d.DayOfWeekName,
		&d.NameOfMonth,
		&d.CYQuarter,
		&d.CYDay,
		&d.CYWeek,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get date %s: %w", date.Format("2006-01-02"), err)
	}
	return &d, nil
}

// Count returns the number of date rows
func (r *DateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count dates: %w", err)
	}
	return count, nil
}
