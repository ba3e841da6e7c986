// Package lunar resolves lunisolar calendar anchor days to Gregorian dates
// using a precomputed conversion table.
//
// Lunisolar dates can't be derived with a closed-form algorithm the way
// Easter can; the month lengths and leap months depend on astronomical
// new-moon times. Instead we embed a table of the specific anchor days
// holiday rules actually reference (lunar 1/1, 5/5, 8/15, 4/8), generated
// from published astronomical data for a fixed window of Gregorian years.
package lunar

import (
	"errors"
	"fmt"

	"github.com/zapponejosh/holiday-api/internal/calendar"
)

// System identifies a lunisolar calendar system.
type System string

// SystemChinese is the Chinese lunisolar calendar, also used for holiday
// reckoning in Korea and Vietnam. Regional calendars occasionally differ
// by a day due to time-zone-dependent new moon times; the table follows
// the Chinese reckoning.
const SystemChinese System = "chinese"

// ErrNoData is returned when the conversion table has no entry for the
// requested year or anchor day. Callers should treat this as "rule does
// not apply this year", not as a hard failure.
var ErrNoData = errors.New("no lunar conversion data")

type anchorKey struct {
	system System
	year   int
	month  int
	day    int
}

// Anchor returns the Gregorian date on which the given lunar month/day
// falls in the given Gregorian year.
//
// Only anchor days present in the embedded table resolve; everything else
// returns ErrNoData.
func Anchor(system System, year, month, day int) (calendar.Date, error) {
	d, ok := anchorTable[anchorKey{system, year, month, day}]
	if !ok {
		return calendar.Date{}, fmt.Errorf("%w: %s %d/%d in %d", ErrNoData, system, month, day, year)
	}
	return d, nil
}

// Years returns the inclusive Gregorian year range covered by the table
// for the given system and anchor day. Returns ok=false when the anchor
// day has no entries at all.
func Years(system System, month, day int) (min, max int, ok bool) {
	for k := range anchorTable {
		if k.system != system || k.month != month || k.day != day {
			continue
		}
		if !ok {
			min, max, ok = k.year, k.year, true
			continue
		}
		if k.year < min {
			min = k.year
		}
		if k.year > max {
			max = k.year
		}
	}
	return min, max, ok
}
