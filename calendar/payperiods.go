package calendar

import (
	"time"

	"datedim/models"
)

// buildPayPeriods walks the 14-day grid through the year range. The walk
// starts early enough that a pay date landing in the first days of the
// range always has its period represented; the trailing period of the
// previous year is therefore part of the output.
func (g *Generator) buildPayPeriods(startYear, endYear int) []*models.PayPeriod {
	rangeStart := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	// Earliest start whose pay date can still land inside the range.
	lowBound := rangeStart.AddDate(0, 0, -(periodLength + payDateOffset - 1))

	start := g.anchor
	for start.After(lowBound) {
		start = start.AddDate(0, 0, -periodLength)
	}
	for start.Before(lowBound) {
		start = start.AddDate(0, 0, periodLength)
	}

	var periods []*models.PayPeriod
	for index := 1; !start.After(rangeEnd); index++ {
		end := start.AddDate(0, 0, periodLength-1)
		payDate := g.payDate(end)
		yearStart := start.Year()
		yearEnd := end.Year()

		// Sequence within the start year; restarts at 1 for the first
		// period starting on or after Jan 1.
		jan1 := time.Date(yearStart, time.January, 1, 0, 0, 0, 0, time.UTC)
		ppNumber := daysBetween(jan1, start)/periodLength + 1

		holidays, weekdaysStart, weekdaysEnd := g.periodDayCounts(start, end, yearStart, yearEnd)

		periods = append(periods, &models.PayPeriod{
			ID:                  yearStart*100 + ppNumber,
			StartDate:           start,
			EndDate:             end,
			PPIndex:             index,
			PPNumber:            ppNumber,
			YearStart:           yearStart,
			YearEnd:             yearEnd,
			IsSplitYear:         yearStart != yearEnd,
			Holidays:            holidays,
			WorkDaysInYearStart: weekdaysStart,
			WorkDaysInYearEnd:   weekdaysEnd,
			HoursInYearStart:    weekdaysStart * WorkHoursPerDay,
			HoursInYearEnd:      weekdaysEnd * WorkHoursPerDay,
			PayDate:             payDate,
			PayYear:             payDate.Year(),
		})

		start = start.AddDate(0, 0, periodLength)
	}
	return periods
}

// payDate returns the date wages for the period are paid: a fixed offset
// after the period end, moved a day earlier when it lands on an observed
// holiday. The day after Thanksgiving stays a pay date even though it is
// an observed holiday.
func (g *Generator) payDate(end time.Time) time.Time {
	pd := end.AddDate(0, 0, payDateOffset)
	if g.isHoliday(pd) && !isDayAfterThanksgiving(pd) {
		pd = pd.AddDate(0, 0, -1)
	}
	return pd
}

func isDayAfterThanksgiving(d time.Time) bool {
	actual, _ := dayAfterThanksgiving.Calc(d.Year())
	return actual.Month() == d.Month() && actual.Day() == d.Day()
}

// periodDayCounts tallies observed holidays across the period and weekdays
// on each side of a year boundary. For a period contained in a single year
// both weekday counts cover the whole period.
func (g *Generator) periodDayCounts(start, end time.Time, yearStart, yearEnd int) (holidays, weekdaysStart, weekdaysEnd int) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if g.isHoliday(d) {
			holidays++
		}
		if isWeekend(d) {
			continue
		}
		if d.Year() == yearStart {
			weekdaysStart++
		}
		if d.Year() == yearEnd {
			weekdaysEnd++
		}
	}
	return holidays, weekdaysStart, weekdaysEnd
}

// payDaySet collects the pay dates of the generated periods.
func payDaySet(periods []*models.PayPeriod) map[time.Time]struct{} {
	set := make(map[time.Time]struct{}, len(periods))
	for _, p := range periods {
		set[p.PayDate] = struct{}{}
	}
	return set
}
