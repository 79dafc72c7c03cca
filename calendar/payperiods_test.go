package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datedim/models"
)

func periodEndingOn(periods []*models.PayPeriod, end time.Time) *models.PayPeriod {
	for _, p := range periods {
		if p.EndDate.Equal(end) {
			return p
		}
	}
	return nil
}

func TestBuildPayPeriods(t *testing.T) {
	g := NewGenerator(DefaultAnchor)
	tables, err := g.Generate(2025, 2025)
	require.NoError(t, err)

	periods := tables.PayPeriods
	require.NotEmpty(t, periods)

	t.Run("lead-in period covers the first pay day of the year", func(t *testing.T) {
		first := periods[0]
		assert.Equal(t, date(2024, time.December, 15), first.StartDate)
		assert.Equal(t, date(2024, time.December, 28), first.EndDate)
		assert.Equal(t, 1, first.PPIndex)
		assert.Equal(t, 25, first.PPNumber)
		assert.Equal(t, 202425, first.ID)
		assert.Equal(t, date(2025, time.January, 3), first.PayDate)
		assert.Equal(t, 2025, first.PayYear)
		assert.False(t, first.IsSplitYear)
	})

	t.Run("split year period counts each side separately", func(t *testing.T) {
		second := periods[1]
		assert.Equal(t, date(2024, time.December, 29), second.StartDate)
		assert.Equal(t, date(2025, time.January, 11), second.EndDate)
		assert.Equal(t, 26, second.PPNumber)
		assert.Equal(t, 202426, second.ID)
		assert.True(t, second.IsSplitYear)
		assert.Equal(t, 2024, second.YearStart)
		assert.Equal(t, 2025, second.YearEnd)
		assert.Equal(t, 1, second.Holidays) // New Year's Day
		assert.Equal(t, 2, second.WorkDaysInYearStart)
		assert.Equal(t, 8, second.WorkDaysInYearEnd)
		assert.Equal(t, 16, second.HoursInYearStart)
		assert.Equal(t, 64, second.HoursInYearEnd)
	})

	t.Run("numbering restarts at the anchor", func(t *testing.T) {
		third := periods[2]
		assert.Equal(t, date(2025, time.January, 12), third.StartDate)
		assert.Equal(t, 1, third.PPNumber)
		assert.Equal(t, 202501, third.ID)
	})

	t.Run("indexes are sequential across the run", func(t *testing.T) {
		for i, p := range periods {
			assert.Equal(t, i+1, p.PPIndex)
		}
	})

	t.Run("26 periods start in the year", func(t *testing.T) {
		var count int
		var last *models.PayPeriod
		for _, p := range periods {
			if p.YearStart == 2025 {
				count++
				last = p
			}
		}
		assert.Equal(t, 26, count)
		require.NotNil(t, last)
		assert.Equal(t, date(2025, time.December, 28), last.StartDate)
		assert.True(t, last.IsSplitYear)
		assert.Equal(t, 2026, last.YearEnd)
	})

	t.Run("grid is contiguous", func(t *testing.T) {
		for i := 1; i < len(periods); i++ {
			assert.Equal(t, periods[i-1].EndDate.AddDate(0, 0, 1), periods[i].StartDate)
		}
		for _, p := range periods {
			assert.Equal(t, periodLength-1, daysBetween(p.StartDate, p.EndDate))
		}
	})
}

func TestPayDateHolidayShift(t *testing.T) {
	g := NewGenerator(DefaultAnchor)

	t.Run("observed holiday moves the pay date a day earlier", func(t *testing.T) {
		tables, err := g.Generate(2026, 2026)
		require.NoError(t, err)

		// July 4 2026 is a Saturday, observed Friday July 3, which is the
		// raw pay date of the period ending June 27.
		p := periodEndingOn(tables.PayPeriods, date(2026, time.June, 27))
		require.NotNil(t, p)
		assert.Equal(t, date(2026, time.July, 2), p.PayDate)
	})

	t.Run("day after thanksgiving stays a pay date", func(t *testing.T) {
		tables, err := g.Generate(2030, 2030)
		require.NoError(t, err)

		p := periodEndingOn(tables.PayPeriods, date(2030, time.November, 23))
		require.NotNil(t, p)
		assert.Equal(t, date(2030, time.November, 29), p.PayDate)
	})
}

func TestPayPeriodNumberingFromJanuaryFirst(t *testing.T) {
	// 2023-01-01 lands on the default grid, so the year carries 27
	// period starts and the numbering runs 1 through 27.
	g := NewGenerator(DefaultAnchor)
	tables, err := g.Generate(2023, 2023)
	require.NoError(t, err)

	var inYear []*models.PayPeriod
	for _, p := range tables.PayPeriods {
		if p.YearStart == 2023 {
			inYear = append(inYear, p)
		}
	}
	require.Len(t, inYear, 27)
	assert.Equal(t, date(2023, time.January, 1), inYear[0].StartDate)
	assert.Equal(t, 1, inYear[0].PPNumber)
	assert.Equal(t, 202301, inYear[0].ID)
	assert.Equal(t, date(2023, time.December, 31), inYear[26].StartDate)
	assert.Equal(t, 27, inYear[26].PPNumber)
	assert.Equal(t, 202327, inYear[26].ID)
}

func TestGeneratorCustomAnchor(t *testing.T) {
	// Any boundary on the same grid produces the same periods.
	a := NewGenerator(DefaultAnchor)
	b := NewGenerator(DefaultAnchor.AddDate(0, 0, 5*periodLength))

	ta, err := a.Generate(2025, 2025)
	require.NoError(t, err)
	tb, err := b.Generate(2025, 2025)
	require.NoError(t, err)

	require.Len(t, tb.PayPeriods, len(ta.PayPeriods))
	for i := range ta.PayPeriods {
		assert.Equal(t, ta.PayPeriods[i], tb.PayPeriods[i])
	}
}
