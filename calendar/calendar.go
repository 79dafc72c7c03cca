// Package calendar computes the contents of the calendar reference
// tables: one row per year, per pay period and per day for a year range.
package calendar

import (
	"fmt"
	"time"

	cal "github.com/rickar/cal/v2"

	"datedim/models"
)

const (
	// WorkHoursPerDay is the nominal length of a working day.
	WorkHoursPerDay = 8

	periodLength  = 14 // days per pay period
	payDateOffset = 6  // days from period end to pay date
)

// DefaultAnchor is the default first pay period boundary.
var DefaultAnchor = time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC)

// Tables holds one full run's worth of generated rows.
type Tables struct {
	Years      []*models.Year
	PayPeriods []*models.PayPeriod
	Dates      []*models.Date
}

// Generator computes calendar facts for a year range.
type Generator struct {
	holidays *cal.BusinessCalendar
	anchor   time.Time
}

// NewGenerator creates a generator whose pay period grid is anchored at
// the given period start date. Any boundary on the grid is a valid anchor.
func NewGenerator(anchor time.Time) *Generator {
	return &Generator{
		holidays: newHolidayCalendar(),
		anchor:   midnightUTC(anchor),
	}
}

// Generate computes the Years, PayPeriods and Dates rows for the inclusive
// year range. Pay periods are computed first because the pay day flags on
// date rows depend on them.
func (g *Generator) Generate(startYear, endYear int) (*Tables, error) {
	if startYear < 1 {
		return nil, fmt.Errorf("start year must be positive, got %d", startYear)
	}
	if startYear > endYear {
		return nil, fmt.Errorf("invalid year range: start %d is after end %d", startYear, endYear)
	}

	periods := g.buildPayPeriods(startYear, endYear)
	dates := g.buildDates(startYear, endYear, payDaySet(periods))
	years := buildYears(dates, periods)

	return &Tables{Years: years, PayPeriods: periods, Dates: dates}, nil
}

// isHoliday reports whether the date is an observed holiday.
func (g *Generator) isHoliday(d time.Time) bool {
	_, observed, _ := g.holidays.IsHoliday(d)
	return observed
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from one midnight to another.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func isWeekend(d time.Time) bool {
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}
