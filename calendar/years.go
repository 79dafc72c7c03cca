package calendar

import (
	"datedim/models"
)

// buildYears aggregates the generated date rows into one row per year.
// Pay periods are attributed to the year they start in.
func buildYears(dates []*models.Date, periods []*models.PayPeriod) []*models.Year {
	periodCounts := make(map[int]int)
	for _, p := range periods {
		periodCounts[p.YearStart]++
	}

	var years []*models.Year
	var current *models.Year
	for _, d := range dates {
		if current == nil || current.Year != d.Year {
			current = &models.Year{
				Year:           d.Year,
				TotalDays:      daysInYear(d.Year),
				PayPeriods:     periodCounts[d.Year],
				IsLeap:         isLeapYear(d.Year),
				IsPresElection: d.Year%4 == 0,
				IsInauguration: d.Year%4 == 1,
			}
			years = append(years, current)
		}
		if d.IsWorkDay {
			current.WorkDays++
		}
		if d.IsHoliday {
			current.Holidays++
		}
		if d.IsWeekend {
			current.WeekendDays++
		} else {
			current.WeekDays++
		}
	}
	for _, y := range years {
		y.WorkHours = y.WeekDays * WorkHoursPerDay
	}
	return years
}
