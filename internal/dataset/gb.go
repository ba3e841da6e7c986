package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Bank holidays in the United Kingdom. Weekend holidays get a substitute
// day the following Monday. The summer bank holiday and several others
// differ between Scotland, Northern Ireland, and England & Wales, so they
// live in subdivision overlays.
//
// The next-Monday policy shifts each holiday independently, so when
// Dec 25 falls on a Saturday both Christmas Day and Boxing Day observe
// Monday Dec 27, whereas the proclaimed substitute days are Dec 27 and
// Dec 28. The policy table has no cascade for consecutive holidays.
func unitedKingdom() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "GB",
		Name:       "United Kingdom",
		Observance: holiday.ObservanceNextMonday,
		Rules: []holiday.Rule{
			{Name: "New Year's Day", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.January, Day: 1, Observed: true},
			{Name: "Good Friday", Category: holiday.CategoryBank, Kind: holiday.KindEasterOffset, Offset: -2},
			{Name: "Early May Bank Holiday", Category: holiday.CategoryBank, Kind: holiday.KindNthWeekday, Month: time.May, Weekday: time.Monday, Ordinal: 1, StartYear: 1978},
			{Name: "Spring Bank Holiday", Category: holiday.CategoryBank, Kind: holiday.KindNthWeekday, Month: time.May, Weekday: time.Monday, Ordinal: holiday.LastOccurrence, StartYear: 1971},
			{Name: "Christmas Day", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.December, Day: 25, Observed: true},
			{Name: "Boxing Day", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.December, Day: 26, Observed: true},
		},
		Subdivisions: map[string][]holiday.Rule{
			"ENG": {
				{Name: "Easter Monday", Category: holiday.CategoryBank, Kind: holiday.KindEasterOffset, Offset: 1},
				{Name: "Summer Bank Holiday", Category: holiday.CategoryBank, Kind: holiday.KindNthWeekday, Month: time.August, Weekday: time.Monday, Ordinal: holiday.LastOccurrence},
			},
			"WLS": {
				{Name: "Easter Monday", Category: holiday.CategoryBank, Kind: holiday.KindEasterOffset, Offset: 1},
				{Name: "Summer Bank Holiday", Category: holiday.CategoryBank, Kind: holiday.KindNthWeekday, Month: time.August, Weekday: time.Monday, Ordinal: holiday.LastOccurrence},
			},
			"SCT": {
				{Name: "2nd January", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.January, Day: 2, Observed: true},
				{Name: "Summer Bank Holiday", Category: holiday.CategoryBank, Kind: holiday.KindNthWeekday, Month: time.August, Weekday: time.Monday, Ordinal: 1},
				{Name: "St Andrew's Day", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.November, Day: 30, StartYear: 2007, Observed: true},
			},
			"NIR": {
				{Name: "St Patrick's Day", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.March, Day: 17, Observed: true},
				{Name: "Easter Monday", Category: holiday.CategoryBank, Kind: holiday.KindEasterOffset, Offset: 1},
				{Name: "Battle of the Boyne", Category: holiday.CategoryBank, Kind: holiday.KindFixed, Month: time.July, Day: 12, Observed: true},
				{Name: "Summer Bank Holiday", Category: holiday.CategoryBank, Kind: holiday.KindNthWeekday, Month: time.August, Weekday: time.Monday, Ordinal: holiday.LastOccurrence},
			},
		},
	}
}
