package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// National public holidays in Australia plus state overlays. Anzac Day is
// deliberately not substituted when it falls on a weekend.
func australia() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "AU",
		Name:       "Australia",
		Observance: holiday.ObservanceNextMonday,
		Rules: []holiday.Rule{
			{Name: "New Year's Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1, Observed: true},
			{Name: "Australia Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 26, StartYear: 1935, Observed: true},
			{Name: "Good Friday", Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: -2},
			{Name: "Easter Monday", Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 1},
			{Name: "Anzac Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.April, Day: 25},
			{Name: "Christmas Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25, Observed: true},
			{Name: "Boxing Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 26, Observed: true},
		},
		Subdivisions: map[string][]holiday.Rule{
			"NSW": {
				{Name: "King's Birthday", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.June, Weekday: time.Monday, Ordinal: 2},
				{Name: "Labour Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.October, Weekday: time.Monday, Ordinal: 1},
			},
			"VIC": {
				{Name: "Labour Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.March, Weekday: time.Monday, Ordinal: 2},
				{Name: "King's Birthday", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.June, Weekday: time.Monday, Ordinal: 2},
				{Name: "Melbourne Cup Day", Category: holiday.CategoryOptional, Kind: holiday.KindNthWeekday, Month: time.November, Weekday: time.Tuesday, Ordinal: 1},
			},
			"WA": {
				{Name: "Labour Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.March, Weekday: time.Monday, Ordinal: 1},
				{Name: "Western Australia Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.June, Weekday: time.Monday, Ordinal: 1},
			},
			"QLD": {
				{Name: "Labour Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.May, Weekday: time.Monday, Ordinal: 1},
				{Name: "King's Birthday", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.October, Weekday: time.Monday, Ordinal: 1},
			},
		},
	}
}
