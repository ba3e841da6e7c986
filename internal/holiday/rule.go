// Package holiday implements the holiday rule model, the per-country
// registry, and the engine that expands rules into concrete dates.
package holiday

import (
	"errors"
	"time"

	"github.com/zapponejosh/holiday-api/internal/calendar"
	"github.com/zapponejosh/holiday-api/internal/lunar"
)

// Category classifies a holiday.
type Category string

// Holiday categories.
const (
	CategoryPublic   Category = "public"
	CategoryBank     Category = "bank"
	CategoryOptional Category = "optional"
)

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPublic, CategoryBank, CategoryOptional:
		return true
	}
	return false
}

// Kind discriminates the rule variants.
type Kind string

// LastOccurrence selects the last occurrence of a weekday in a month when
// used as the Ordinal of a KindNthWeekday rule.
const LastOccurrence = calendar.LastOccurrence

// Rule kinds.
const (
	// KindFixed is a fixed month/day rule.
	KindFixed Kind = "fixed"
	// KindNthWeekday is an "Nth weekday of month" rule
	// (ordinal 1..5 or calendar.LastOccurrence).
	KindNthWeekday Kind = "nth_weekday"
	// KindEasterOffset is a day offset from Easter Sunday.
	KindEasterOffset Kind = "easter_offset"
	// KindLunar is a day offset from a lunisolar anchor day.
	KindLunar Kind = "lunar"
)

// Rule describes one holiday of a country or subdivision. Rules are
// immutable reference data: built once, never modified by queries.
//
// Which fields are meaningful depends on Kind:
//
//	KindFixed        Month, Day
//	KindNthWeekday   Month, Weekday, Ordinal
//	KindEasterOffset Offset (days from Easter Sunday; -2 Good Friday, +1 Easter Monday)
//	KindLunar        LunarMonth, LunarDay, Offset (days from the anchor)
type Rule struct {
	Name     string
	Names    map[string]string // optional locale → localized name
	Category Category
	Kind     Kind

	Month   time.Month
	Day     int
	Weekday time.Weekday
	Ordinal int
	Offset  int

	LunarMonth int
	LunarDay   int

	// Validity window, inclusive; zero means unbounded on that side.
	StartYear int
	EndYear   int

	// Observed marks the rule as eligible for the country's
	// weekend-substitution policy.
	Observed bool

	// OverridesBase makes a subdivision rule replace any base-country
	// rule with the same name instead of adding alongside it.
	OverridesBase bool
}

// AppliesIn reports whether the rule is active in the given year.
func (r Rule) AppliesIn(year int) bool {
	if r.StartYear != 0 && year < r.StartYear {
		return false
	}
	if r.EndYear != 0 && year > r.EndYear {
		return false
	}
	return true
}

// Resolve computes the rule's base date for a year before any observance
// shifting. ok=false means the rule simply does not produce a date that
// year (missing 5th weekday, lunar data gap); err is reserved for genuine
// calculation failures that must surface to the caller.
func (r Rule) Resolve(year int, system lunar.System) (d calendar.Date, ok bool, err error) {
	switch r.Kind {
	case KindFixed:
		d, err = calendar.NewDate(year, r.Month, r.Day)
		if err != nil {
			// Feb 29 rules in non-leap years and the like: skip.
			return calendar.Date{}, false, nil
		}
		return d, true, nil

	case KindNthWeekday:
		d, err = calendar.NthWeekday(year, r.Month, r.Weekday, r.Ordinal)
		if err != nil {
			// Missing 5th occurrences and malformed ordinal/month values
			// both mean the rule yields no date, same as the fixed case.
			if errors.Is(err, calendar.ErrNoSuchOccurrence) || errors.Is(err, calendar.ErrInvalidDate) {
				return calendar.Date{}, false, nil
			}
			return calendar.Date{}, false, err
		}
		return d, true, nil

	case KindEasterOffset:
		easter, err := calendar.Easter(year)
		if err != nil {
			return calendar.Date{}, false, err
		}
		return easter.AddDays(r.Offset), true, nil

	case KindLunar:
		if system == "" {
			system = lunar.SystemChinese
		}
		anchor, err := lunar.Anchor(system, year, r.LunarMonth, r.LunarDay)
		if err != nil {
			if errors.Is(err, lunar.ErrNoData) {
				return calendar.Date{}, false, nil
			}
			return calendar.Date{}, false, err
		}
		return anchor.AddDays(r.Offset), true, nil
	}

	return calendar.Date{}, false, nil
}

// LocalizedName returns the rule's name for a locale, falling back to the
// default Name when the locale has no entry.
func (r Rule) LocalizedName(locale string) string {
	if name, ok := r.Names[locale]; ok {
		return name
	}
	return r.Name
}
