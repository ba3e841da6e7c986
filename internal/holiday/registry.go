package holiday

import (
	"sort"

	"github.com/zapponejosh/holiday-api/internal/lunar"
)

// CountryCalendar is the immutable rule set of one country: its base
// rules in evaluation order plus additive subdivision overlays.
type CountryCalendar struct {
	// Code is the ISO 3166-1 alpha-2 country code, upper case.
	Code string
	// Name is the English display name.
	Name string
	// Observance is the country's weekend-substitution policy, applied
	// to rules flagged Observed. Nil behaves like ObservanceNone.
	Observance ObservancePolicy
	// LunarSystem selects the lunisolar table for KindLunar rules.
	// Empty defaults to the Chinese reckoning.
	LunarSystem lunar.System
	// Rules are the base-country rules, in a stable order that decides
	// tie-breaking for same-date holidays.
	Rules []Rule
	// Subdivisions maps subdivision codes to overlay rules. Base rules
	// always apply; overlays add to them (or replace same-name base
	// rules when OverridesBase is set).
	Subdivisions map[string][]Rule
}

// RulesFor returns the effective rule list for a subdivision. An empty or
// unrecognized subdivision code yields the base rules only; unknown
// subdivisions of a known country deliberately fall back rather than fail.
func (c *CountryCalendar) RulesFor(subdivision string) []Rule {
	overlay, ok := c.Subdivisions[subdivision]
	if subdivision == "" || !ok {
		return c.Rules
	}

	replaced := make(map[string]bool)
	for _, r := range overlay {
		if r.OverridesBase {
			replaced[r.Name] = true
		}
	}

	merged := make([]Rule, 0, len(c.Rules)+len(overlay))
	for _, r := range c.Rules {
		if replaced[r.Name] {
			continue
		}
		merged = append(merged, r)
	}
	return append(merged, overlay...)
}

// HasSubdivision reports whether the country defines the subdivision code.
func (c *CountryCalendar) HasSubdivision(code string) bool {
	_, ok := c.Subdivisions[code]
	return ok
}

// Registry is the process-wide lookup of country calendars. It is built
// once at startup and read-only afterwards, so concurrent reads need no
// locking.
type Registry struct {
	countries map[string]*CountryCalendar
	codes     []string
}

// NewRegistry builds a registry from country calendars. Later calendars
// with a duplicate code replace earlier ones.
func NewRegistry(calendars ...*CountryCalendar) *Registry {
	countries := make(map[string]*CountryCalendar, len(calendars))
	for _, c := range calendars {
		countries[c.Code] = c
	}
	codes := make([]string, 0, len(countries))
	for code := range countries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &Registry{countries: countries, codes: codes}
}

// Lookup returns the calendar for a country code, or ok=false when the
// code is not registered.
func (r *Registry) Lookup(code string) (*CountryCalendar, bool) {
	c, ok := r.countries[code]
	return c, ok
}

// Codes returns all registered country codes in sorted order.
// The returned slice must not be modified.
func (r *Registry) Codes() []string {
	return r.codes
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	return len(r.countries)
}
