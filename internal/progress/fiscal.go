package progress

import (
	"fmt"
	"time"
)

// The fiscal year runs October 1 through September 30 and is labeled by the
// calendar year in which it ends: October 2025 belongs to fiscal year 2026.

// FiscalYearOf returns the fiscal year a calendar date falls in.
func FiscalYearOf(date time.Time) int {
	if date.Month() >= time.October {
		return date.Year() + 1
	}
	return date.Year()
}

// FiscalYearBounds returns the first and last calendar day of a fiscal year.
func FiscalYearBounds(fiscalYear int) (time.Time, time.Time) {
	start := time.Date(fiscalYear-1, time.October, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(fiscalYear, time.September, 30, 0, 0, 0, 0, time.UTC)
	return start, end
}

// MonthKey produces the sortable "YYYY-MM" token for a date.
func MonthKey(date time.Time) string {
	return fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))
}

// FiscalMonthSequence returns the 12 month keys of a fiscal year in fiscal
// order: October of fiscalYear-1 through September of fiscalYear.
func FiscalMonthSequence(fiscalYear int) []string {
	keys := make([]string, 0, 12)
	cursor := time.Date(fiscalYear-1, time.October, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		keys = append(keys, MonthKey(cursor))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return keys
}

// MonthBounds returns the first and last day of a calendar month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// YearBounds returns January 1 and December 31 of a calendar year.
func YearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
