package progress

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalYearOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{date(2025, time.September, 30), 2025},
		{date(2025, time.October, 1), 2026},
		{date(2025, time.December, 31), 2026},
		{date(2026, time.January, 1), 2026},
		{date(2026, time.September, 30), 2026},
		{date(2026, time.October, 1), 2027},
	}
	for _, tt := range tests {
		if got := FiscalYearOf(tt.date); got != tt.want {
			t.Errorf("FiscalYearOf(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestFiscalYearBounds(t *testing.T) {
	start, end := FiscalYearBounds(2026)
	if !start.Equal(date(2025, time.October, 1)) {
		t.Errorf("start = %v, want 2025-10-01", start)
	}
	if !end.Equal(date(2026, time.September, 30)) {
		t.Errorf("end = %v, want 2026-09-30", end)
	}
}

func TestFiscalMonthSequence(t *testing.T) {
	got := FiscalMonthSequence(2026)
	want := []string{
		"2025-10", "2025-11", "2025-12",
		"2026-01", "2026-02", "2026-03",
		"2026-04", "2026-05", "2026-06",
		"2026-07", "2026-08", "2026-09",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FiscalMonthSequence(2026) = %v, want %v", got, want)
	}
}

func TestMonthKeyPadding(t *testing.T) {
	if got := MonthKey(date(2026, time.January, 15)); got != "2026-01" {
		t.Errorf("MonthKey = %q, want %q", got, "2026-01")
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		year    int
		month   time.Month
		wantEnd int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2025, time.September, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		start, end := MonthBounds(tt.year, tt.month)
		if start.Day() != 1 {
			t.Errorf("MonthBounds(%d, %s) start day = %d, want 1", tt.year, tt.month, start.Day())
		}
		if end.Day() != tt.wantEnd {
			t.Errorf("MonthBounds(%d, %s) end day = %d, want %d", tt.year, tt.month, end.Day(), tt.wantEnd)
		}
	}
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(2025)
	if !start.Equal(date(2025, time.January, 1)) || !end.Equal(date(2025, time.December, 31)) {
		t.Errorf("YearBounds(2025) = %v..%v", start, end)
	}
}
