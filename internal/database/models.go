package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
	"github.com/zapponejosh/holiday-api/internal/lunar"
)

// CountryRow represents a row in the countries table.
type CountryRow struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Observance  string    `json:"observance"`   // policy name: none, us_federal, ...
	LunarSystem string    `json:"lunar_system"` // '' if the country has no lunar rules
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RuleRow represents a row in the holiday_rules table.
// Subdivision is empty for country-level rules.
type RuleRow struct {
	ID            int64     `json:"id"`
	CountryCode   string    `json:"country_code"`
	Subdivision   string    `json:"subdivision"`
	Name          string    `json:"name"`
	Names         string    `json:"names"` // JSON object of locale -> name
	Category      string    `json:"category"`
	Kind          string    `json:"kind"`
	Month         int       `json:"month"`
	Day           int       `json:"day"`
	Weekday       int       `json:"weekday"`
	Ordinal       int       `json:"ordinal"`
	DayOffset     int       `json:"day_offset"`
	LunarMonth    int       `json:"lunar_month"`
	LunarDay      int       `json:"lunar_day"`
	StartYear     int       `json:"start_year"`
	EndYear       int       `json:"end_year"`
	Observed      bool      `json:"observed"`
	OverridesBase bool      `json:"overrides_base"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToRule converts a database row to the in-memory rule model.
func (r *RuleRow) ToRule() (holiday.Rule, error) {
	names, err := UnmarshalNames(r.Names)
	if err != nil {
		return holiday.Rule{}, fmt.Errorf("rule %q: unmarshal names: %w", r.Name, err)
	}

	kind := holiday.Kind(r.Kind)
	switch kind {
	case holiday.KindFixed, holiday.KindNthWeekday, holiday.KindEasterOffset, holiday.KindLunar:
	default:
		return holiday.Rule{}, fmt.Errorf("rule %q: unknown kind %q", r.Name, r.Kind)
	}

	category := holiday.Category(r.Category)
	if !category.IsValid() {
		return holiday.Rule{}, fmt.Errorf("rule %q: unknown category %q", r.Name, r.Category)
	}

	// Reject variant fields the engine could never resolve, so a bad
	// import is caught at the boundary instead of silently yielding
	// a rule that produces no dates.
	switch kind {
	case holiday.KindFixed:
		if r.Month < 1 || r.Month > 12 {
			return holiday.Rule{}, fmt.Errorf("rule %q: month %d out of range", r.Name, r.Month)
		}
		if r.Day < 1 || r.Day > 31 {
			return holiday.Rule{}, fmt.Errorf("rule %q: day %d out of range", r.Name, r.Day)
		}
	case holiday.KindNthWeekday:
		if r.Month < 1 || r.Month > 12 {
			return holiday.Rule{}, fmt.Errorf("rule %q: month %d out of range", r.Name, r.Month)
		}
		if r.Weekday < 0 || r.Weekday > 6 {
			return holiday.Rule{}, fmt.Errorf("rule %q: weekday %d out of range", r.Name, r.Weekday)
		}
		if (r.Ordinal < 1 || r.Ordinal > 5) && r.Ordinal != holiday.LastOccurrence {
			return holiday.Rule{}, fmt.Errorf("rule %q: ordinal %d out of range", r.Name, r.Ordinal)
		}
	case holiday.KindLunar:
		if r.LunarMonth < 1 || r.LunarMonth > 12 {
			return holiday.Rule{}, fmt.Errorf("rule %q: lunar month %d out of range", r.Name, r.LunarMonth)
		}
		if r.LunarDay < 1 || r.LunarDay > 30 {
			return holiday.Rule{}, fmt.Errorf("rule %q: lunar day %d out of range", r.Name, r.LunarDay)
		}
	}

	return holiday.Rule{
		Name:          r.Name,
		Names:         names,
		Category:      category,
		Kind:          kind,
		Month:         time.Month(r.Month),
		Day:           r.Day,
		Weekday:       time.Weekday(r.Weekday),
		Ordinal:       r.Ordinal,
		Offset:        r.DayOffset,
		LunarMonth:    r.LunarMonth,
		LunarDay:      r.LunarDay,
		StartYear:     r.StartYear,
		EndYear:       r.EndYear,
		Observed:      r.Observed,
		OverridesBase: r.OverridesBase,
	}, nil
}

// NewRuleRow converts an in-memory rule to a database row.
func NewRuleRow(countryCode, subdivision string, rule holiday.Rule) (*RuleRow, error) {
	names, err := MarshalNames(rule.Names)
	if err != nil {
		return nil, fmt.Errorf("rule %q: marshal names: %w", rule.Name, err)
	}

	return &RuleRow{
		CountryCode:   countryCode,
		Subdivision:   subdivision,
		Name:          rule.Name,
		Names:         names,
		Category:      string(rule.Category),
		Kind:          string(rule.Kind),
		Month:         int(rule.Month),
		Day:           rule.Day,
		Weekday:       int(rule.Weekday),
		Ordinal:       rule.Ordinal,
		DayOffset:     rule.Offset,
		LunarMonth:    rule.LunarMonth,
		LunarDay:      rule.LunarDay,
		StartYear:     rule.StartYear,
		EndYear:       rule.EndYear,
		Observed:      rule.Observed,
		OverridesBase: rule.OverridesBase,
	}, nil
}

// ToCalendar converts a country row plus its rules into a CountryCalendar.
func (c *CountryRow) ToCalendar(rules []RuleRow) (*holiday.CountryCalendar, error) {
	policy, ok := holiday.PolicyByName(c.Observance)
	if !ok {
		return nil, fmt.Errorf("country %s: unknown observance policy %q", c.Code, c.Observance)
	}

	cal := &holiday.CountryCalendar{
		Code:        c.Code,
		Name:        c.Name,
		Observance:  policy,
		LunarSystem: lunar.System(c.LunarSystem),
	}

	for _, row := range rules {
		rule, err := row.ToRule()
		if err != nil {
			return nil, fmt.Errorf("country %s: %w", c.Code, err)
		}
		if row.Subdivision == "" {
			cal.Rules = append(cal.Rules, rule)
			continue
		}
		if cal.Subdivisions == nil {
			cal.Subdivisions = make(map[string][]holiday.Rule)
		}
		cal.Subdivisions[row.Subdivision] = append(cal.Subdivisions[row.Subdivision], rule)
	}

	return cal, nil
}

// MarshalNames serializes a locale map to the JSON stored in the names column.
// A nil map serializes to "{}".
func MarshalNames(names map[string]string) (string, error) {
	if len(names) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(names)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalNames parses the names column. "{}" yields a nil map.
func UnmarshalNames(s string) (map[string]string, error) {
	if s == "" || s == "{}" {
		return nil, nil
	}
	var names map[string]string
	if err := json.Unmarshal([]byte(s), &names); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	return names, nil
}
