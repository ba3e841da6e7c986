// Package calendar provides calendar date arithmetic for holiday calculations.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Errors returned by date construction and resolution.
var (
	// ErrInvalidDate is returned for dates that don't exist on the
	// Gregorian calendar (February 30, month 13, and so on).
	ErrInvalidDate = errors.New("invalid date")

	// ErrNoSuchOccurrence is returned when an nth-weekday rule asks for
	// a fifth occurrence that the month doesn't have. Callers should
	// treat this as "does not apply this year", not as a hard failure.
	ErrNoSuchOccurrence = errors.New("no such weekday occurrence in month")
)

// Date is a calendar date with day precision and no time zone.
// The zero value is not a valid date; construct with NewDate or FromTime.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates year/month/day and returns the date.
// Returns ErrInvalidDate for out-of-range months or days,
// accounting for leap years.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate for statically known dates; it panics on invalid input.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime truncates a time.Time to its calendar date.
// This is the adapter boundary for callers using the standard time package.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// dayNumber converts the date to a count of days since the civil epoch
// (1970-01-01 = day 0). Negative for earlier dates.
//
// Algorithm from Howard Hinnant's days_from_civil:
// https://howardhinnant.github.io/date_algorithms.html
func (d Date) dayNumber() int {
	y := d.Year
	m := int(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	doy := (153*((m+9)%12)+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// fromDayNumber is the inverse of dayNumber (civil_from_days).
func fromDayNumber(n int) Date {
	n += 719468
	era := n / 146097
	if n < 0 && n%146097 != 0 {
		era--
	}
	doe := n - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
		y++
	}
	return Date{Year: y, Month: time.Month(m), Day: day}
}

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	wd := (d.dayNumber() + 4) % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}

// AddDays returns the date shifted by n days (n may be negative).
func (d Date) AddDays(n int) Date {
	if n == 0 {
		return d
	}
	return fromDayNumber(d.dayNumber() + n)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.dayNumber() < other.dayNumber()
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return d.dayNumber() > other.dayNumber()
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// LastOccurrence selects the last occurrence of a weekday in a month
// when passed as the ordinal to NthWeekday.
const LastOccurrence = -1

// NthWeekday returns the date of the ordinal-th occurrence of weekday in
// the given month. Ordinal 1 through 5 counts from the start of the month;
// LastOccurrence (-1) returns the final occurrence.
//
// Returns ErrNoSuchOccurrence when ordinal is 5 and the month has only
// four occurrences of that weekday.
func NthWeekday(year int, month time.Month, weekday time.Weekday, ordinal int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	last := DaysInMonth(year, month)

	if ordinal == LastOccurrence {
		lastDate := Date{Year: year, Month: month, Day: last}
		back := (int(lastDate.Weekday()) - int(weekday) + 7) % 7
		return Date{Year: year, Month: month, Day: last - back}, nil
	}

	if ordinal < 1 || ordinal > 5 {
		return Date{}, fmt.Errorf("%w: ordinal %d", ErrInvalidDate, ordinal)
	}

	first := Date{Year: year, Month: month, Day: 1}
	forward := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + forward + 7*(ordinal-1)
	if day > last {
		return Date{}, fmt.Errorf("%w: %s #%d in %04d-%02d", ErrNoSuchOccurrence, weekday, ordinal, year, month)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}
