package calendar

import (
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// Holiday set observed by the generated tables. Holidays landing on a
// Saturday are observed the preceding Friday, on a Sunday the following
// Monday; the date rows flag the observed date.
var (
	// MLK Day entered the holiday calendar in 1986; earlier years must
	// not flag it.
	mlkDay = us.MlkDay.Clone(&cal.Holiday{StartYear: 1986})

	// The day after Thanksgiving tracks Thanksgiving itself rather than
	// the fourth Friday of November; the two disagree in years where
	// November starts on a Friday.
	dayAfterThanksgiving = &cal.Holiday{
		Name:  "Day after Thanksgiving",
		Type:  cal.ObservancePublic,
		Month: time.November,
		Func: func(h *cal.Holiday, year int) time.Time {
			t, _ := us.ThanksgivingDay.Calc(year)
			return t.AddDate(0, 0, 1)
		},
	}
)

func newHolidayCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		us.NewYear,
		mlkDay,
		us.MemorialDay,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		dayAfterThanksgiving,
		us.ChristmasDay,
	)
	return c
}
