package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Federal holidays in the United States. Saturday holidays are observed
// the preceding Friday, Sunday holidays the following Monday (5 U.S.C. 6103).
func unitedStates() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "US",
		Name:       "United States",
		Observance: holiday.ObservanceUSFederal,
		Rules: []holiday.Rule{
			{Name: "New Year's Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1, Observed: true},
			{Name: "Martin Luther King Jr. Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.January, Weekday: time.Monday, Ordinal: 3, StartYear: 1986},
			{Name: "Washington's Birthday", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.February, Weekday: time.Monday, Ordinal: 3},
			{Name: "Memorial Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.May, Weekday: time.Monday, Ordinal: holiday.LastOccurrence, StartYear: 1971},
			{Name: "Juneteenth National Independence Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.June, Day: 19, StartYear: 2021, Observed: true},
			{Name: "Independence Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.July, Day: 4, Observed: true},
			{Name: "Labor Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.September, Weekday: time.Monday, Ordinal: 1},
			{Name: "Columbus Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.October, Weekday: time.Monday, Ordinal: 2},
			{Name: "Veterans Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 11, Observed: true},
			{Name: "Thanksgiving Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.November, Weekday: time.Thursday, Ordinal: 4},
			{Name: "Christmas Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25, Observed: true},
		},
		Subdivisions: map[string][]holiday.Rule{
			"CA": {
				{Name: "Cesar Chavez Day", Category: holiday.CategoryOptional, Kind: holiday.KindFixed, Month: time.March, Day: 31, StartYear: 1995},
			},
			"TX": {
				{Name: "Texas Independence Day", Category: holiday.CategoryOptional, Kind: holiday.KindFixed, Month: time.March, Day: 2},
				{Name: "San Jacinto Day", Category: holiday.CategoryOptional, Kind: holiday.KindFixed, Month: time.April, Day: 21},
			},
			"MA": {
				{Name: "Patriots' Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.April, Weekday: time.Monday, Ordinal: 3, StartYear: 1969},
			},
		},
	}
}
