package holiday

import (
	"sort"

	"github.com/zapponejosh/holiday-api/internal/calendar"
)

// Holiday is one computed holiday occurrence. Produced fresh on every
// query; equality is (date, name).
type Holiday struct {
	Date        calendar.Date     `json:"date"`
	Name        string            `json:"name"`
	Names       map[string]string `json:"names,omitempty"`
	Category    Category          `json:"category"`
	Country     string            `json:"country"`
	Subdivision string            `json:"subdivision,omitempty"`
	// Observed is true when the date was moved off a weekend by the
	// country's substitution policy.
	Observed bool `json:"observed"`
}

// expandYear evaluates every applicable rule of a country (plus the
// subdivision overlay, if any) for one year and returns the deduplicated,
// date-sorted holiday list.
func expandYear(c *CountryCalendar, year int, subdivision string) ([]Holiday, error) {
	rules := c.RulesFor(subdivision)
	policy := c.Observance

	type keyed struct {
		date calendar.Date
		name string
	}
	seen := make(map[keyed]bool, len(rules))
	out := make([]Holiday, 0, len(rules))

	sub := ""
	if c.HasSubdivision(subdivision) {
		sub = subdivision
	}

	for _, rule := range rules {
		if !rule.AppliesIn(year) {
			continue
		}

		base, ok, err := rule.Resolve(year, c.LunarSystem)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		date, shifted := base, false
		if rule.Observed && policy != nil {
			date, shifted = policy.Shift(base)
		}

		k := keyed{date, rule.Name}
		if seen[k] {
			continue
		}
		seen[k] = true

		out = append(out, Holiday{
			Date:        date,
			Name:        rule.Name,
			Names:       rule.Names,
			Category:    rule.Category,
			Country:     c.Code,
			Subdivision: sub,
			Observed:    shifted,
		})
	}

	// Ascending by date; insertion order of the source rules breaks ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}
