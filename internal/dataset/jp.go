package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// National holidays in Japan. A holiday falling on a Sunday is observed
// the following Monday (furikae kyūjitsu).
//
// The equinox holidays (Vernal and Autumnal Equinox Day) depend on the
// astronomical equinox instant and are not expressible in the rule
// variants; they are omitted. See DESIGN.md.
func japan() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "JP",
		Name:       "Japan",
		Observance: holiday.ObservanceSundayToMonday,
		Rules: []holiday.Rule{
			{Name: "元日", Names: map[string]string{"en": "New Year's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1, Observed: true},
			{Name: "成人の日", Names: map[string]string{"en": "Coming of Age Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.January, Weekday: time.Monday, Ordinal: 2, StartYear: 2000},
			{Name: "建国記念の日", Names: map[string]string{"en": "National Foundation Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.February, Day: 11, StartYear: 1967, Observed: true},
			{Name: "天皇誕生日", Names: map[string]string{"en": "Emperor's Birthday"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.February, Day: 23, StartYear: 2020, Observed: true},
			{Name: "昭和の日", Names: map[string]string{"en": "Showa Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.April, Day: 29, StartYear: 2007, Observed: true},
			{Name: "憲法記念日", Names: map[string]string{"en": "Constitution Memorial Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 3, Observed: true},
			{Name: "みどりの日", Names: map[string]string{"en": "Greenery Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 4, StartYear: 2007, Observed: true},
			{Name: "こどもの日", Names: map[string]string{"en": "Children's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 5, Observed: true},
			{Name: "海の日", Names: map[string]string{"en": "Marine Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.July, Weekday: time.Monday, Ordinal: 3, StartYear: 2003},
			{Name: "山の日", Names: map[string]string{"en": "Mountain Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.August, Day: 11, StartYear: 2016, Observed: true},
			{Name: "敬老の日", Names: map[string]string{"en": "Respect for the Aged Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.September, Weekday: time.Monday, Ordinal: 3, StartYear: 2003},
			{Name: "スポーツの日", Names: map[string]string{"en": "Sports Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindNthWeekday, Month: time.October, Weekday: time.Monday, Ordinal: 2, StartYear: 2000},
			{Name: "文化の日", Names: map[string]string{"en": "Culture Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 3, Observed: true},
			{Name: "勤労感謝の日", Names: map[string]string{"en": "Labour Thanksgiving Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 23, Observed: true},
		},
	}
}
