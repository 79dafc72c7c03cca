package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datedim/calendar"
	"datedim/repository/testutil"
)

// Loads a full generated year through the three repositories in one
// transaction, the way a production run does.
func TestBulkLoadGeneratedYear(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	tables, err := calendar.NewGenerator(calendar.DefaultAnchor).Generate(2024, 2024)
	require.NoError(t, err)

	yearRepo := NewYearRepository(testDB.DB)
	payPeriodRepo := NewPayPeriodRepository(testDB.DB)
	dateRepo := NewDateRepository(testDB.DB)

	err = testDB.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := yearRepo.BulkInsert(ctx, tx, tables.Years); err != nil {
			return err
		}
		if _, err := payPeriodRepo.BulkInsert(ctx, tx, tables.PayPeriods); err != nil {
			return err
		}
		if _, err := dateRepo.BulkInsert(ctx, tx, tables.Dates); err != nil {
			return err
		}
		return nil
	})
	require.NoError(t, err)

	dateCount, err := dateRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(366), dateCount)

	year, err := yearRepo.GetByYear(ctx, 2024)
	require.NoError(t, err)
	require.NotNil(t, year)
	assert.Equal(t, 366, year.TotalDays)
	assert.Equal(t, 26, year.PayPeriods)
	assert.True(t, year.IsLeap)

	periods, err := payPeriodRepo.ListByYearStart(ctx, 2024)
	require.NoError(t, err)
	assert.Len(t, periods, 26)

	christmas, err := dateRepo.GetByDate(ctx, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, christmas)
	assert.True(t, christmas.IsHoliday)
	assert.False(t, christmas.IsWorkDay)
}
