package holiday

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/calendar"
)

// ObservancePolicy maps the weekday a holiday lands on to the number of
// days its observed date shifts. Weekdays absent from the map don't shift.
type ObservancePolicy map[time.Weekday]int

// Common per-country substitution policies.
var (
	// ObservanceNone never shifts.
	ObservanceNone = ObservancePolicy{}

	// ObservanceUSFederal moves Saturday holidays to the preceding
	// Friday and Sunday holidays to the following Monday.
	ObservanceUSFederal = ObservancePolicy{
		time.Saturday: -1,
		time.Sunday:   +1,
	}

	// ObservanceNextMonday moves both weekend days forward to Monday
	// (UK/Ireland-style substitute days).
	ObservanceNextMonday = ObservancePolicy{
		time.Saturday: +2,
		time.Sunday:   +1,
	}

	// ObservanceSundayToMonday only substitutes Sundays.
	ObservanceSundayToMonday = ObservancePolicy{
		time.Sunday: +1,
	}
)

// policyNames maps the stable identifiers used by the rule store to
// policies. Keep in sync with the holiday_rules ingestion format.
var policyNames = map[string]ObservancePolicy{
	"none":             ObservanceNone,
	"us_federal":       ObservanceUSFederal,
	"next_monday":      ObservanceNextMonday,
	"sunday_to_monday": ObservanceSundayToMonday,
}

// PolicyByName resolves a policy identifier from ingested data.
func PolicyByName(name string) (ObservancePolicy, bool) {
	p, ok := policyNames[name]
	return p, ok
}

// PolicyName returns the stable identifier for a known policy. Policies
// not in the named set report "none".
func PolicyName(p ObservancePolicy) string {
	for name, candidate := range policyNames {
		if policiesEqual(p, candidate) {
			return name
		}
	}
	return "none"
}

func policiesEqual(a, b ObservancePolicy) bool {
	if len(a) != len(b) {
		return false
	}
	for day, delta := range a {
		if b[day] != delta {
			return false
		}
	}
	return true
}

// Shift applies the policy to a base date and reports whether a shift
// happened. A shift that would leave the base date's year is suppressed
// and the base date is returned unchanged; observed dates never spill
// into an adjacent year's result.
func (p ObservancePolicy) Shift(base calendar.Date) (calendar.Date, bool) {
	delta, ok := p[base.Weekday()]
	if !ok || delta == 0 {
		return base, false
	}
	shifted := base.AddDays(delta)
	if shifted.Year != base.Year {
		return base, false
	}
	return shifted, true
}
