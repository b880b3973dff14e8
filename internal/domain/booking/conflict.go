package booking

import "time"

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one date. The single inequality pair covers
// containment, partial overlap and exact match.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// HasConflict reports whether the candidate period for employeeID overlaps an
// existing active reservation of the same employee. Cancelled and inactive
// records never block a new reservation; excludeID skips the booking being
// updated.
func HasConflict(employeeID string, start, end time.Time, existing []Booking, excludeID string) bool {
	for _, b := range existing {
		if b.EmployeeID != employeeID {
			continue
		}
		if !b.Active || b.Status != StatusReserved {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if Overlaps(b.StartDate, b.EndDate, start, end) {
			return true
		}
	}
	return false
}
