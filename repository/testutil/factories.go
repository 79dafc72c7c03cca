package testutil

import (
	"time"

	"datedim/models"
)

// CreateTestYear creates a year row with plausible non-leap defaults
func CreateTestYear(year int) *models.Year {
	return &models.Year{
		Year:           year,
		TotalDays:      365,
		WorkDays:       253,
		Holidays:       8,
		WeekDays:       261,
		WeekendDays:    104,
		WorkHours:      2088,
		PayPeriods:     26,
		IsLeap:         false,
		IsPresElection: year%4 == 0,
		IsInauguration: year%4 == 1,
	}
}

// CreateTestPayPeriod creates a 14-day pay period row starting at the
// given date
func CreateTestPayPeriod(start time.Time, ppIndex, ppNumber int) *models.PayPeriod {
	end := start.AddDate(0, 0, 13)
	payDate := end.AddDate(0, 0, 6)
	return &models.PayPeriod{
		ID:                  start.Year()*100 + ppNumber,
		StartDate:           start,
		EndDate:             end,
		PPIndex:             ppIndex,
		PPNumber:            ppNumber,
		YearStart:           start.Year(),
		YearEnd:             end.Year(),
		IsSplitYear:         start.Year() != end.Year(),
		Holidays:            0,
		WorkDaysInYearStart: 10,
		WorkDaysInYearEnd:   10,
		HoursInYearStart:    80,
		HoursInYearEnd:      80,
		PayDate:             payDate,
		PayYear:             payDate.Year(),
	}
}

// CreateTestDate creates a date row with flags derived from the weekday
func CreateTestDate(d time.Time) *models.Date {
	weekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
	return &models.Date{
		Date:             d,
		Year:             d.Year(),
		Month:            int(d.Month()),
		Day:              d.Day(),
		DayOfWeek:        int(d.Weekday()) + 1,
		IsLastDayOfMonth: d.AddDate(0, 0, 1).Month() != d.Month(),
		IsWeekend:        weekend,
		IsHoliday:        false,
		IsWorkDay:        !weekend,
		IsPayDay:         false,
		DayOfWeekName:    d.Weekday().String(),
		NameOfMonth:      d.Month().String(),
		CYQuarter:        (int(d.Month())-1)/3 + 1,
		CYDay:            d.YearDay(),
		CYWeek:           (d.YearDay()+6-int(d.Weekday()))/7 + 1,
	}
}
