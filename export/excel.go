// Package export writes the generated tables to an Excel workbook so a
// run can be reviewed without a database.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"datedim/calendar"
	"datedim/models"
)

const dateLayout = "2006-01-02"

// WriteWorkbook writes one sheet per table to an xlsx file at path.
func WriteWorkbook(path string, tables *calendar.Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{"Years", yearHeader, yearRows(tables.Years)},
		{"PayPeriods", payPeriodHeader, payPeriodRows(tables.PayPeriods)},
		{"Dates", dateHeader, dateRows(tables.Dates)},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(s.name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
			}
		}
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// writeSheet fills a sheet with a bold, filtered header row followed by
// the data rows.
func writeSheet(f *excelize.File, name string, header []string, rows [][]any) error {
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &head); err != nil {
		return fmt.Errorf("failed to write header on %s: %w", name, err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d on %s: %w", i+2, name, err)
		}
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+2, name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to address header on %s: %w", name, err)
	}
	if err := f.SetCellStyle(name, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header on %s: %w", name, err)
	}
	if err := f.AutoFilter(name, "A1:"+last, nil); err != nil {
		return fmt.Errorf("failed to set filter on %s: %w", name, err)
	}
	return nil
}

var yearHeader = []string{
	"YearYear", "TotalDays", "WorkDays", "Holidays", "WeekDays",
	"WeekendDays", "WorkHours", "PayPeriods", "IsLeap", "IsPresElection",
	"IsInauguration",
}

func yearRows(years []*models.Year) [][]any {
	rows := make([][]any, len(years))
	for i, y := range years {
		rows[i] = []any{
			y.Year, y.TotalDays, y.WorkDays, y.Holidays, y.WeekDays,
			y.WeekendDays, y.WorkHours, y.PayPeriods, y.IsLeap,
			y.IsPresElection, y.IsInauguration,
		}
	}
	return rows
}

var payPeriodHeader = []string{
	"PayPeriodID", "StartDate", "EndDate", "PPIndex", "PPNumber",
	"YearStart", "YearEnd", "IsSplitYear", "Holidays",
	"WorkDaysInYearStart", "WorkDaysInYearEnd", "HoursInYearStart",
	"HoursInYearEnd", "PayDate", "PayYear",
}

func payPeriodRows(periods []*models.PayPeriod) [][]any {
	rows := make([][]any, len(periods))
	for i, p := range periods {
		rows[i] = []any{
			p.ID, p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout),
			p.PPIndex, p.PPNumber, p.YearStart, p.YearEnd, p.IsSplitYear,
			p.Holidays, p.WorkDaysInYearStart, p.WorkDaysInYearEnd,
			p.HoursInYearStart, p.HoursInYearEnd,
			p.PayDate.Format(dateLayout), p.PayYear,
		}
	}
	return rows
}

var dateHeader = []string{
	"DateDate", "DateYear", "DateMonth", "DateDay", "DateDayOfWeek",
	"IsLastDayOfMonth", "IsWeekend", "IsHoliday", "IsWorkDay", "IsPayDay",
	"DayOfWeekName", "NameOfMonth", "CYQuarter", "CYDay", "CYWeek",
}

func dateRows(dates []*models.Date) [][]any {
	rows := make([][]any, len(dates))
	for i, d := range dates {
		rows[i] = []any{
			d.Date.Format(dateLayout), d.Year, d.Month, d.Day, d.DayOfWeek,
			d.IsLastDayOfMonth, d.IsWeekend, d.IsHoliday, d.IsWorkDay,
			d.IsPayDay, d.DayOfWeekName, d.NameOfMonth, d.CYQuarter,
			d.CYDay, d.CYWeek,
		}
	}
	return rows
}
