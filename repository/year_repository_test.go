package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datedim/models"
	"datedim/repository/testutil"
)

func TestYearRepository_BulkInsert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewYearRepository(testDB.DB)
	ctx := context.Background()

	years := []*models.Year{
		testutil.CreateTestYear(2023),
		testutil.CreateTestYear(2024),
		testutil.CreateTestYear(2025),
	}

	var inserted int64
	err := testDB.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, err = repo.BulkInsert(ctx, tx, years)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	t.Run("duplicate year rolls back the transaction", func(t *testing.T) {
		err := testDB.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
			_, err := repo.BulkInsert(ctx, tx, []*models.Year{testutil.CreateTestYear(2024)})
			return err
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate key")

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestYearRepository_GetByYear(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewYearRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no row found", func(t *testing.T) {
		y, err := repo.GetByYear(ctx, 2024)
		require.NoError(t, err)
		assert.Nil(t, y)
	})

	t.Run("row found", func(t *testing.T) {
		original := testutil.CreateTestYear(2024)
		original.TotalDays = 366
		original.IsLeap = true

		err := testDB.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
			_, err := repo.BulkInsert(ctx, tx, []*models.Year{original})
			return err
		})
		require.NoError(t, err)

		y, err := repo.GetByYear(ctx, 2024)
		require.NoError(t, err)
		require.NotNil(t, y)

		assert.Equal(t, original.Year, y.Year)
		assert.Equal(t, original.TotalDays, y.TotalDays)
		assert.Equal(t, original.WorkDays, y.WorkDays)
		assert.Equal(t, original.Holidays, y.Holidays)
		assert.Equal(t, original.WorkHours, y.WorkHours)
		assert.Equal(t, original.PayPeriods, y.PayPeriods)
		assert.True(t, y.IsLeap)
		assert.Equal(t, original.IsPresElection, y.IsPresElection)
		assert.Equal(t, original.IsInauguration, y.IsInauguration)
	})
}
