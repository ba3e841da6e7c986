package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Gregorian computus validity bounds. The classical algorithm is defined
// from the Gregorian reform onward and tabulated through 4099.
const (
	MinEasterYear = 1583
	MaxEasterYear = 4099
)

// ErrEasterOutOfRange is returned when a year falls outside the domain
// of the Gregorian Easter algorithm.
var ErrEasterOutOfRange = errors.New("year outside Gregorian Easter algorithm range")

// Easter calculates the date of Easter Sunday for a given year using
// the computus algorithm for the Gregorian calendar.
//
// The algorithm is based on the method described by J.M. Oudin (1940)
// and is valid for Gregorian years 1583 through 4099.
func Easter(year int) (Date, error) {
	if year < MinEasterYear || year > MaxEasterYear {
		return Date{}, fmt.Errorf("%w: %d", ErrEasterOutOfRange, year)
	}

	// Computus algorithm for Gregorian calendar
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
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}
