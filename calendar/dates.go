package calendar

import (
	"time"

	"datedim/models"
)

// buildDates produces one row per day of [Jan 1 startYear, Dec 31 endYear].
func (g *Generator) buildDates(startYear, endYear int, payDays map[time.Time]struct{}) []*models.Date {
	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	dates := make([]*models.Date, 0, daysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		weekend := isWeekend(d)
		holiday := g.isHoliday(d)
		_, payDay := payDays[d]

		dates = append(dates, &models.Date{
			Date:             d,
			Year:             d.Year(),
			Month:            int(d.Month()),
			Day:              d.Day(),
			DayOfWeek:        int(d.Weekday()) + 1,
			IsLastDayOfMonth: d.AddDate(0, 0, 1).Month() != d.Month(),
			IsWeekend:        weekend,
			IsHoliday:        holiday,
			IsWorkDay:        !weekend && !holiday,
			IsPayDay:         payDay,
			DayOfWeekName:    d.Weekday().String(),
			NameOfMonth:      d.Month().String(),
			CYQuarter:        (int(d.Month())-1)/3 + 1,
			CYDay:            d.YearDay(),
			CYWeek:           WeekOfYear(d),
		})
	}
	return dates
}

// WeekOfYear numbers weeks with Sunday as the first day; all days before
// the first Sunday of the year belong to week 1.
func WeekOfYear(d time.Time) int {
	return (d.YearDay()+6-int(d.Weekday()))/7 + 1
}
