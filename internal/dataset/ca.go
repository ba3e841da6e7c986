package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// National statutory holidays in Canada. Fixed-date holidays falling on
// a weekend are generally observed the following Monday.
//
// Victoria Day ("the Monday preceding May 25") isn't expressible in the
// rule variants and is omitted; see DESIGN.md.
func canada() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "CA",
		Name:       "Canada",
		Observance: holiday.ObservanceNextMonday,
		Rules: []holiday.Rule{
			{Name: "New Year's Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1, Observed: true},
			{Name: "Good Friday", Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: -2},
			{Name: "Canada Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.July, Day: 1, Observed: true},
			{Name: "Labour Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.September, Weekday: time.Monday, Ordinal: 1},
			{Name: "National Day for Truth and Reconciliation", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.September, Day: 30, StartYear: 2021},
			{Name: "Thanksgiving", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.October, Weekday: time.Monday, Ordinal: 2},
			{Name: "Remembrance Day", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.November, Day: 11},
			{Name: "Christmas Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25, Observed: true},
			{Name: "Boxing Day", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.December, Day: 26, Observed: true},
		},
		Subdivisions: map[string][]holiday.Rule{
			"QC": {
				{Name: "Fête nationale du Québec", Names: map[string]string{"en": "National Holiday of Quebec"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.June, Day: 24},
			},
			"AB": {
				{Name: "Family Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.February, Weekday: time.Monday, Ordinal: 3, StartYear: 1990},
				{Name: "Heritage Day", Category: holiday.CategoryOptional, Kind: holiday.KindNthWeekday, Month: time.August, Weekday: time.Monday, Ordinal: 1},
			},
			"ON": {
				{Name: "Family Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.February, Weekday: time.Monday, Ordinal: 3, StartYear: 2008},
			},
		},
	}
}
