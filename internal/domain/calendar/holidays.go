package calendar

import (
	"sync"
	"time"
)

// Holiday is a single non-working date in a given year.
type Holiday struct {
	Date    time.Time `json:"date"`
	Name    string    `json:"name"`
	Movable bool      `json:"movable"`
}

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

type movableHoliday struct {
	offsetDays int
	name       string
}

// Brazilian national holidays observed company-wide.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Confraternização Universal"},
	{time.April, 21, "Tiradentes"},
	{time.May, 1, "Dia do Trabalho"},
	{time.September, 7, "Independência do Brasil"},
	{time.October, 12, "Nossa Senhora Aparecida"},
	{time.November, 2, "Finados"},
	{time.November, 15, "Proclamação da República"},
	{time.December, 25, "Natal"},
}

// Day offsets from Easter Sunday.
var movableHolidays = []movableHoliday{
	{-47, "Carnaval"},
	{-2, "Sexta-feira Santa"},
	{60, "Corpus Christi"},
}

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize strips the time-of-day component of t.
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Easter returns the date of Easter Sunday computed with the anonymous
// Gregorian computus. Exact for any Gregorian year.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date(year, time.Month(month), day)
}

// HolidaysForYear returns every holiday of the year, fixed and movable. A
// movable holiday landing on a fixed date is reported once.
func HolidaysForYear(year int) []Holiday {
	seen := make(map[time.Time]struct{}, len(fixedHolidays)+len(movableHolidays))
	holidays := make([]Holiday, 0, len(fixedHolidays)+len(movableHolidays))

	for _, fixed := range fixedHolidays {
		date := Date(year, fixed.month, fixed.day)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		holidays = append(holidays, Holiday{Date: date, Name: fixed.name})
	}

	easter := Easter(year)
	for _, movable := range movableHolidays {
		date := easter.AddDate(0, 0, movable.offsetDays)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		holidays = append(holidays, Holiday{Date: date, Name: movable.name, Movable: true})
	}

	return holidays
}

// BusinessDayHolidays unions the holidays of the inclusive year range and
// drops the ones falling on a weekend, which the weekend rule already
// excludes from business-day arithmetic.
func BusinessDayHolidays(startYear, endYear int) (map[time.Time]struct{}, error) {
	if endYear < startYear {
		return nil, ErrInvalidRange
	}

	set := make(map[time.Time]struct{})
	for year := startYear; year <= endYear; year++ {
		for _, holiday := range HolidaysForYear(year) {
			if isWeekend(holiday.Date) {
				continue
			}
			set[holiday.Date] = struct{}{}
		}
	}
	return set, nil
}

// IsHoliday reports whether date is a holiday, weekend or not.
func IsHoliday(date time.Time) bool {
	date = Normalize(date)
	for _, holiday := range HolidaysForYear(date.Year()) {
		if holiday.Date.Equal(date) {
			return true
		}
	}
	return false
}

func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// Cache memoizes per-year holiday lists. Recomputation is idempotent, so
// concurrent misses for the same year only cost duplicate work.
type Cache struct {
	mu    sync.RWMutex
	years map[int][]Holiday
}

func NewCache() *Cache {
	return &Cache{years: make(map[int][]Holiday)}
}

func (c *Cache) HolidaysForYear(year int) []Holiday {
	c.mu.RLock()
	holidays, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return holidays
	}

	holidays = HolidaysForYear(year)
	c.mu.Lock()
	c.years[year] = holidays
	c.mu.Unlock()
	return holidays
}
