package handlers

import (
	"testing"
	"time"
)

func TestDateRangeOrMonthExplicitRange(t *testing.T) {
	from, to, err := dateRangeOrMonth("2026-01-10", "2026-01-20")
	if err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if got := from.Format(dateLayout); got != "2026-01-10" {
		t.Fatalf("from = %s, want 2026-01-10", got)
	}
	if got := to.Format(dateLayout); got != "2026-01-20" {
		t.Fatalf("to = %s, want 2026-01-20", got)
	}
}

func TestDateRangeOrMonthSingleDay(t *testing.T) {
	if _, _, err := dateRangeOrMonth("2026-01-10", "2026-01-10"); err != nil {
		t.Fatalf("single-day range rejected: %v", err)
	}
}

func TestDateRangeOrMonthInverted(t *testing.T) {
	if _, _, err := dateRangeOrMonth("2026-01-20", "2026-01-10"); err == nil {
		t.Fatal("inverted range must be rejected")
	}
}

func TestDateRangeOrMonthDefaultsToCurrentMonth(t *testing.T) {
	from, to, err := dateRangeOrMonth("", "")
	if err != nil {
		t.Fatalf("default range errored: %v", err)
	}
	now := time.Now().UTC()
	if from.Year() != now.Year() || from.Month() != now.Month() || from.Day() != 1 {
		t.Fatalf("from = %v, want first day of current month", from)
	}
	if to.Before(from) {
		t.Fatalf("default range inverted: %v..%v", from, to)
	}
	if to.Month() != now.Month() {
		t.Fatalf("to = %v, want last day of current month", to)
	}
}

func TestDateRangeOrMonthBadInput(t *testing.T) {
	if _, _, err := dateRangeOrMonth("2026-13-01", ""); err == nil {
		t.Fatal("invalid from date must be rejected")
	}
	if _, _, err := dateRangeOrMonth("", "not-a-date"); err == nil {
		t.Fatal("invalid to date must be rejected")
	}
}
