package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Public holidays in New Zealand. Mondayisation applies to the fixed
// year-start and Christmas holidays, and since 2014 to Waitangi Day and
// Anzac Day.
//
// Matariki is anchored to the heliacal rising of the Pleiades and has no
// lunisolar table here, so it is omitted; see DESIGN.md.
func newZealand() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "NZ",
		Name:       "New Zealand",
		Observance: holiday.ObservanceNextMonday,
		Rules: []holiday.Rule{
			{Name: "New Year's Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1, Observed: true},
			{Name: "Day after New Year's Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 2, Observed: true},
			{Name: "Waitangi Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.February, Day: 6, StartYear: 2014, Observed: true},
			{Name: "Waitangi Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.February, Day: 6, EndYear: 2013},
			{Name: "Good Friday", Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: -2},
			{Name: "Easter Monday", Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 1},
			{Name: "Anzac Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.April, Day: 25, StartYear: 2014, Observed: true},
			{Name: "Anzac Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.April, Day: 25, EndYear: 2013},
			{Name: "Labour Day", Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.October, Weekday: time.Monday, Ordinal: 4},
			{Name: "Christmas Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25, Observed: true},
			{Name: "Boxing Day", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 26, Observed: true},
		},
	}
}
