package holiday

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zapponejosh/holiday-api/internal/calendar"
)

// Errors surfaced by the query API.
var (
	// ErrUnsupportedCountry is returned for country codes not present
	// in the registry (or not well-formed two-letter codes).
	ErrUnsupportedCountry = errors.New("unsupported country")

	// ErrYearOutOfRange is returned for years outside the globally
	// supported window.
	ErrYearOutOfRange = errors.New("year outside supported range")
)

// IsClientError reports whether the error stems from bad query input
// rather than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnsupportedCountry) || errors.Is(err, ErrYearOutOfRange)
}

// Default supported query window. Lunar rules cover a narrower window and
// simply don't apply outside it.
const (
	DefaultMinYear = 1900
	DefaultMaxYear = 2200
)

// CountryInfo describes one supported country for introspection.
type CountryInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Querier answers holiday queries against an immutable registry. All
// methods are pure and safe for concurrent use without coordination.
type Querier struct {
	registry *Registry
	minYear  int
	maxYear  int
}

// NewQuerier creates a querier over the registry with the default
// supported year window.
func NewQuerier(registry *Registry) *Querier {
	return &Querier{registry: registry, minYear: DefaultMinYear, maxYear: DefaultMaxYear}
}

// NewQuerierWithRange creates a querier with a custom supported window.
func NewQuerierWithRange(registry *Registry, minYear, maxYear int) *Querier {
	return &Querier{registry: registry, minYear: minYear, maxYear: maxYear}
}

// YearRange returns the supported inclusive year window.
func (q *Querier) YearRange() (min, max int) {
	return q.minYear, q.maxYear
}

func (q *Querier) lookup(country string) (*CountryCalendar, error) {
	if len(country) != 2 {
		return nil, fmt.Errorf("%w: %q is not a two-letter ISO 3166-1 code", ErrUnsupportedCountry, country)
	}
	c, ok := q.registry.Lookup(country)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCountry, country)
	}
	return c, nil
}

// HolidaysFor returns all holidays of a country for one year, sorted
// ascending by date. Subdivision may be empty; an unrecognized
// subdivision of a known country falls back to the base rules.
func (q *Querier) HolidaysFor(country string, year int, subdivision string) ([]Holiday, error) {
	c, err := q.lookup(country)
	if err != nil {
		return nil, err
	}
	if year < q.minYear || year > q.maxYear {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, q.minYear, q.maxYear)
	}
	return expandYear(c, year, subdivision)
}

// IsHoliday reports whether the date is a holiday in the country,
// returning the first matching holiday or nil.
func (q *Querier) IsHoliday(country string, date calendar.Date, subdivision string) (*Holiday, error) {
	holidays, err := q.HolidaysFor(country, date.Year, subdivision)
	if err != nil {
		return nil, err
	}
	for i := range holidays {
		if holidays[i].Date == date {
			return &holidays[i], nil
		}
	}
	return nil, nil
}

// NextHoliday returns the first holiday strictly after the given date, or
// nil when none exists within the supported year window.
func (q *Querier) NextHoliday(country string, after calendar.Date, subdivision string) (*Holiday, error) {
	if _, err := q.lookup(country); err != nil {
		return nil, err
	}
	year := after.Year
	if year < q.minYear {
		year = q.minYear
	}
	for ; year <= q.maxYear; year++ {
		holidays, err := q.HolidaysFor(country, year, subdivision)
		if err != nil {
			return nil, err
		}
		for i := range holidays {
			if holidays[i].Date.After(after) {
				return &holidays[i], nil
			}
		}
	}
	return nil, nil
}

// PreviousHoliday returns the last holiday strictly before the given date,
// or nil when none exists within the supported year window.
func (q *Querier) PreviousHoliday(country string, before calendar.Date, subdivision string) (*Holiday, error) {
	if _, err := q.lookup(country); err != nil {
		return nil, err
	}
	year := before.Year
	if year > q.maxYear {
		year = q.maxYear
	}
	for ; year >= q.minYear; year-- {
		holidays, err := q.HolidaysFor(country, year, subdivision)
		if err != nil {
			return nil, err
		}
		for i := len(holidays) - 1; i >= 0; i-- {
			if holidays[i].Date.Before(before) {
				return &holidays[i], nil
			}
		}
	}
	return nil, nil
}

// SupportedCountries returns the registered countries sorted by code.
func (q *Querier) SupportedCountries() []CountryInfo {
	codes := q.registry.Codes()
	out := make([]CountryInfo, 0, len(codes))
	for _, code := range codes {
		c, _ := q.registry.Lookup(code)
		out = append(out, CountryInfo{Code: c.Code, Name: c.Name})
	}
	return out
}

// CachedQuerier memoizes HolidaysFor results. Because rule data is
// immutable and evaluation is pure, entries never need invalidation.
type CachedQuerier struct {
	*Querier

	mu    sync.RWMutex
	cache map[cacheKey][]Holiday
}

type cacheKey struct {
	country     string
	year        int
	subdivision string
}

// NewCachedQuerier wraps a querier with a memoization layer.
func NewCachedQuerier(q *Querier) *CachedQuerier {
	return &CachedQuerier{Querier: q, cache: make(map[cacheKey][]Holiday)}
}

// HolidaysFor returns the cached expansion for the input tuple, computing
// and storing it on first use. Callers must not modify the returned slice.
func (c *CachedQuerier) HolidaysFor(country string, year int, subdivision string) ([]Holiday, error) {
	key := cacheKey{country, year, subdivision}

	c.mu.RLock()
	cached, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	holidays, err := c.Querier.HolidaysFor(country, year, subdivision)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = holidays
	c.mu.Unlock()
	return holidays, nil
}

// IsHoliday is the cached variant of Querier.IsHoliday.
func (c *CachedQuerier) IsHoliday(country string, date calendar.Date, subdivision string) (*Holiday, error) {
	holidays, err := c.HolidaysFor(country, date.Year, subdivision)
	if err != nil {
		return nil, err
	}
	for i := range holidays {
		if holidays[i].Date == date {
			return &holidays[i], nil
		}
	}
	return nil, nil
}
