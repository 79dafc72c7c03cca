package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"datedim/calendar"
	"datedim/config"
	"datedim/database"
	"datedim/export"
	"datedim/repository"
)

// Run executes one generation pass: compute the calendar tables for the
// configured year range and write them in a single transaction, in
// dependency order years, pay periods, dates.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	log.Infof("Generating calendar data for %d-%d...", cfg.StartYear, cfg.EndYear)
	tables, err := calendar.NewGenerator(cfg.Anchor).Generate(cfg.StartYear, cfg.EndYear)
	if err != nil {
		return fmt.Errorf("failed to generate calendar data: %w", err)
	}
	log.Infof("Generated %d years, %d pay periods, %d dates",
		len(tables.Years), len(tables.PayPeriods), len(tables.Dates))

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, database.BuildURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	yearRepo := repository.NewYearRepository(db)
	payPeriodRepo := repository.NewPayPeriodRepository(db)
	dateRepo := repository.NewDateRepository(db)

	log.Info("Writing data to database...")
	err = db.WithTransaction(ctx, func(tx pgx.Tx) error {
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
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	log.Info("Data successfully written to database")

	if cfg.ExcelOutput != "" {
		log.Infof("Writing workbook to %s...", cfg.ExcelOutput)
		if err := export.WriteWorkbook(cfg.ExcelOutput, tables); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	return nil
}
