package models

import (
	"time"
)

// PayPeriod represents a fixed-length biweekly pay span.
// A period whose start and end fall in different calendar years is a
// split-year period; its weekday counts and hours are apportioned to
// each side of the boundary.
type PayPeriod struct {
	ID                  int       `db:"pay_period_id"`
	StartDate           time.Time `db:"start_date"`
	EndDate             time.Time `db:"end_date"`
	PPIndex             int       `db:"pp_index"`
	PPNumber            int       `db:"pp_number"`
	YearStart           int       `db:"year_start"`
	YearEnd             int       `db:"year_end"`
	IsSplitYear         bool      `db:"is_split_year"`
	Holidays            int       `db:"holidays"`
	WorkDaysInYearStart int       `db:"work_days_in_year_start"`
	WorkDaysInYearEnd   int       `db:"work_days_in_year_end"`
	HoursInYearStart    int       `db:"hours_in_year_start"`
	HoursInYearEnd      int       `db:"hours_in_year_end"`
	PayDate             time.Time `db:"pay_date"`
	PayYear             int       `db:"pay_year"`
}
