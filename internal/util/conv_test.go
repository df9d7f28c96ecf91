package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-10-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("01/10/2025"); err == nil {
		t.Error("non-ISO date should fail")
	}
}

func TestParseDateRange(t *testing.T) {
	start, end := ParseDateRange("2025-10-01", "2025-10-31")
	if start == nil || end == nil {
		t.Fatal("both dates valid, got nil range")
	}
	if start.Day() != 1 || end.Day() != 31 {
		t.Errorf("range = %v..%v", start, end)
	}

	// Half-open inputs are ignored entirely.
	if s, e := ParseDateRange("2025-10-01", ""); s != nil || e != nil {
		t.Error("missing end should yield nil range")
	}
	if s, e := ParseDateRange("", "2025-10-31"); s != nil || e != nil {
		t.Error("missing start should yield nil range")
	}
	if s, e := ParseDateRange("bad", "2025-10-31"); s != nil || e != nil {
		t.Error("malformed start should yield nil range")
	}
}

func TestMustParseUint(t *testing.T) {
	if got := MustParseUint("17"); got != 17 {
		t.Errorf("MustParseUint(\"17\") = %d, want 17", got)
	}
	if got := MustParseUint("not-a-number"); got != 0 {
		t.Errorf("MustParseUint garbage = %d, want 0", got)
	}
}
