package calendar

import "time"

// BusinessDaysBetween counts the dates in [start, end] that are neither a
// Saturday, a Sunday nor a holiday.
func BusinessDaysBetween(start, end time.Time) (int, error) {
	start = Normalize(start)
	end = Normalize(end)
	if start.After(end) {
		return 0, ErrInvalidRange
	}

	holidays, err := BusinessDayHolidays(start.Year(), end.Year())
	if err != nil {
		return 0, err
	}

	count := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if isWeekend(date) {
			continue
		}
		if _, holiday := holidays[date]; holiday {
			continue
		}
		count++
	}
	return count, nil
}

// CalendarDaysBetween returns the raw inclusive day count with no weekend or
// holiday exclusion. Vacation day totals use this calendar count while
// booking quotas walk business days; the two semantics are deliberately kept
// apart.
func CalendarDaysBetween(start, end time.Time) (int, error) {
	start = Normalize(start)
	end = Normalize(end)
	if start.After(end) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// EndDateForBusinessDays walks forward from start until days business days
// have been consumed and returns the date of the last one. The start date
// itself counts as day one when it is a business day; weekends and holidays
// consume no quota.
func EndDateForBusinessDays(start time.Time, days int) (time.Time, error) {
	if start.IsZero() || days <= 0 {
		return time.Time{}, ErrInvalidInput
	}
	start = Normalize(start)

	// The final date is unknown until the walk completes, so the holiday set
	// must cover a span wide enough for any run of weekends and holidays.
	horizon := start.AddDate(0, 0, days*2)
	holidays, err := BusinessDayHolidays(start.Year(), horizon.Year()+1)
	if err != nil {
		return time.Time{}, err
	}

	current := start
	counted := 0
	for {
		if !isWeekend(current) {
			if _, holiday := holidays[current]; !holiday {
				counted++
				if counted == days {
					return current, nil
				}
			}
		}
		current = current.AddDate(0, 0, 1)
	}
}
