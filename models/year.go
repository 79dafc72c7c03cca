package models

// Year represents one calendar year with its aggregate counts
type Year struct {
	Year           int  `db:"year_year"`
	TotalDays      int  `db:"total_days"`
	WorkDays       int  `db:"work_days"`
	Holidays       int  `db:"holidays"`
	WeekDays       int  `db:"week_days"`
	WeekendDays    int  `db:"weekend_days"`
	WorkHours      int  `db:"work_hours"`
	PayPeriods     int  `db:"pay_periods"`
	IsLeap         bool `db:"is_leap"`
	IsPresElection bool `db:"is_pres_election"`
	IsInauguration bool `db:"is_inauguration"`
}
