package booking

import (
	"testing"
	"time"

	"lbc/internal/domain/calendar"
)

func TestOverlaps(t *testing.T) {
	jan := func(day int) time.Time { return calendar.Date(2025, time.January, day) }

	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"touching boundaries overlap", jan(1), jan(10), jan(10), jan(20), true},
		{"adjacent ranges do not", jan(1), jan(9), jan(10), jan(20), false},
		{"full containment", jan(5), jan(8), jan(1), jan(10), true},
		{"exact match", jan(1), jan(10), jan(1), jan(10), true},
		{"partial overlap", jan(5), jan(15), jan(10), jan(20), true},
		{"disjoint", jan(1), jan(5), jan(20), jan(25), false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestHasConflictFiltersRecords(t *testing.T) {
	jan := func(day int) time.Time { return calendar.Date(2025, time.January, day) }

	existing := []Booking{
		{ID: "b-1", EmployeeID: "emp-1", StartDate: jan(1), EndDate: jan(10), Status: StatusReserved, Active: true},
		{ID: "b-2", EmployeeID: "emp-1", StartDate: jan(12), EndDate: jan(15), Status: StatusCancelled, Active: false},
		{ID: "b-3", EmployeeID: "emp-2", StartDate: jan(5), EndDate: jan(20), Status: StatusReserved, Active: true},
	}

	if !HasConflict("emp-1", jan(10), jan(12), existing, "") {
		t.Fatal("expected overlap with the active reservation")
	}
	if HasConflict("emp-1", jan(12), jan(14), existing, "") {
		t.Fatal("cancelled booking must not block")
	}
	if HasConflict("emp-3", jan(1), jan(31), existing, "") {
		t.Fatal("other employees' bookings must not block")
	}
	if HasConflict("emp-1", jan(10), jan(12), existing, "b-1") {
		t.Fatal("the booking being updated must be excluded")
	}
}

func TestHasConflictIdempotent(t *testing.T) {
	jan := func(day int) time.Time { return calendar.Date(2025, time.January, day) }
	existing := []Booking{
		{ID: "b-1", EmployeeID: "emp-1", StartDate: jan(1), EndDate: jan(10), Status: StatusReserved, Active: true},
	}

	first := HasConflict("emp-1", jan(5), jan(6), existing, "")
	second := HasConflict("emp-1", jan(5), jan(6), existing, "")
	if first != second {
		t.Fatalf("expected stable result, got %v then %v", first, second)
	}
	if !first {
		t.Fatal("expected conflict")
	}
}
