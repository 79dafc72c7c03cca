package models

import (
	"time"
)

// Date represents one calendar day with its derived attributes.
// Every flag is a pure function of the date, the holiday rule set and
// pay period membership.
type Date struct {
	ID               int64     `db:"date_id"`
	Date             time.Time `db:"date_date"`
	Year             int       `db:"date_year"`
	Month            int       `db:"date_month"`
	Day              int       `db:"date_day"`
	DayOfWeek        int       `db:"date_day_of_week"` // SQL convention: Sunday=1 .. Saturday=7
	IsLastDayOfMonth bool      `db:"is_last_day_of_month"`
	IsWeekend        bool      `db:"is_weekend"`
	IsHoliday        bool      `db:"is_holiday"`
	IsWorkDay        bool      `db:"is_work_day"`
	IsPayDay         bool      `db:"is_pay_day"`
	DayOfWeekName    string    `db:"day_of_week_name"`
	NameOfMonth      string    `db:"name_of_month"`
	CYQuarter        int       `db:"cy_quarter"`
	CYDay            int       `db:"cy_day"`
	CYWeek           int       `db:"cy_week"`
}
