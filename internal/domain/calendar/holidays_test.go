package calendar

import (
	"testing"
	"time"
)

func TestEaster(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2000, time.April, 23},
		{1999, time.April, 4},
		{2038, time.April, 25},
	}

	for _, tc := range cases {
		got := Easter(tc.year)
		want := Date(tc.year, tc.month, tc.day)
		if !got.Equal(want) {
			t.Fatalf("Easter(%d): expected %v, got %v", tc.year, want, got)
		}
	}
}

func TestHolidaysForYearCounts(t *testing.T) {
	holidays := HolidaysForYear(2025)
	if len(holidays) != 11 {
		t.Fatalf("expected 11 holidays for 2025, got %d", len(holidays))
	}

	fixed, movable := 0, 0
	for _, h := range holidays {
		if h.Movable {
			movable++
		} else {
			fixed++
		}
	}
	if fixed != 8 {
		t.Fatalf("expected 8 fixed holidays, got %d", fixed)
	}
	if movable != 3 {
		t.Fatalf("expected 3 movable holidays, got %d", movable)
	}
}

func TestHolidaysForYearDeduplicates(t *testing.T) {
	// Easter 2000 fell on April 23, putting Good Friday on Tiradentes day.
	holidays := HolidaysForYear(2000)
	if len(holidays) != 10 {
		t.Fatalf("expected 10 holidays for 2000, got %d", len(holidays))
	}

	seen := make(map[time.Time]struct{}, len(holidays))
	for _, h := range holidays {
		if _, dup := seen[h.Date]; dup {
			t.Fatalf("duplicate holiday date %v", h.Date)
		}
		seen[h.Date] = struct{}{}
	}
}

func TestHolidaysForYearIdempotent(t *testing.T) {
	first := HolidaysForYear(2026)
	second := HolidaysForYear(2026)
	if len(first) != len(second) {
		t.Fatalf("expected equal holiday lists, got %d and %d entries", len(first), len(second))
	}
	for i := range first {
		if !first[i].Date.Equal(second[i].Date) || first[i].Name != second[i].Name {
			t.Fatalf("holiday %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestBusinessDayHolidaysFiltersWeekends(t *testing.T) {
	set, err := BusinessDayHolidays(2025, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Independence day 2025 falls on a Sunday; the weekend rule already
	// excludes it.
	if _, ok := set[Date(2025, time.September, 7)]; ok {
		t.Fatal("expected 2025-09-07 to be filtered out of the business-day set")
	}
	if _, ok := set[Date(2025, time.December, 25)]; !ok {
		t.Fatal("expected 2025-12-25 in the business-day set")
	}
}

func TestBusinessDayHolidaysInvalidRange(t *testing.T) {
	if _, err := BusinessDayHolidays(2026, 2025); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestIsHoliday(t *testing.T) {
	if !IsHoliday(Date(2025, time.January, 1)) {
		t.Fatal("expected 2025-01-01 to be a holiday")
	}
	if !IsHoliday(Date(2025, time.December, 25)) {
		t.Fatal("expected 2025-12-25 to be a holiday")
	}
	// Weekend holidays still count as holidays here.
	if !IsHoliday(Date(2025, time.September, 7)) {
		t.Fatal("expected 2025-09-07 to be a holiday")
	}
	if IsHoliday(Date(2025, time.November, 13)) {
		t.Fatal("expected 2025-11-13 to be an ordinary day")
	}
}

func TestCacheReturnsSameHolidays(t *testing.T) {
	cache := NewCache()
	first := cache.HolidaysForYear(2025)
	second := cache.HolidaysForYear(2025)
	if len(first) != len(second) {
		t.Fatalf("expected identical cached results, got %d and %d entries", len(first), len(second))
	}
	for i := range first {
		if !first[i].Date.Equal(second[i].Date) {
			t.Fatalf("cached holiday %d differs: %v vs %v", i, first[i].Date, second[i].Date)
		}
	}
}
