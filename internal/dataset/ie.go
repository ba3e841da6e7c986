package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Public holidays in Ireland. Weekend holidays are observed the
// following Monday.
func ireland() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "IE",
		Name:       "Ireland",
		Observance: holiday.ObservanceNextMonday,
		Rules: []holiday.Rule{
			{Name: "New Year's Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1, Observed: true},
			{Name: "St Brigid's Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.February, Weekday: time.Monday, Ordinal: 1, StartYear: 2023},
			{Name: "St Patrick's Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.March, Day: 17, Observed: true},
			{Name: "Easter Monday", Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 1},
			{Name: "May Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.May, Weekday: time.Monday, Ordinal: 1, StartYear: 1994},
			{Name: "June Bank Holiday", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.June, Weekday: time.Monday, Ordinal: 1},
			{Name: "August Bank Holiday", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.August, Weekday: time.Monday, Ordinal: 1},
			{Name: "October Bank Holiday", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.October, Weekday: time.Monday, Ordinal: holiday.LastOccurrence},
			{Name: "Christmas Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25, Observed: true},
			{Name: "St Stephen's Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 26, Observed: true},
		},
	}
}
