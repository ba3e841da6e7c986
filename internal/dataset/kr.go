package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
	"github.com/zapponejosh/holiday-api/internal/lunar"
)

// Public holidays in South Korea. Seollal and Chuseok are three-day
// lunisolar holidays. Substitute-holiday rules were introduced in 2014
// and widened since; they are approximated with a Sunday-to-Monday
// policy on the fixed national days.
func southKorea() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:        "KR",
		Name:        "South Korea",
		Observance:  holiday.ObservanceSundayToMonday,
		LunarSystem: lunar.SystemChinese,
		Rules: []holiday.Rule{
			{Name: "신정", Names: map[string]string{"en": "New Year's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1},
			{Name: "설날 전날", Names: map[string]string{"en": "Day before Seollal"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 1, LunarDay: 1, Offset: -1},
			{Name: "설날", Names: map[string]string{"en": "Seollal"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 1, LunarDay: 1},
			{Name: "설날 다음날", Names: map[string]string{"en": "Day after Seollal"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 1, LunarDay: 1, Offset: 1},
			{Name: "삼일절", Names: map[string]string{"en": "Independence Movement Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.March, Day: 1, Observed: true, StartYear: 1946},
			{Name: "부처님 오신 날", Names: map[string]string{"en": "Buddha's Birthday"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 4, LunarDay: 8},
			{Name: "어린이날", Names: map[string]string{"en": "Children's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 5, Observed: true, StartYear: 1975},
			{Name: "현충일", Names: map[string]string{"en": "Memorial Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.June, Day: 6, StartYear: 1956},
			{Name: "광복절", Names: map[string]string{"en": "Liberation Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.August, Day: 15, Observed: true, StartYear: 1949},
			{Name: "추석 전날", Names: map[string]string{"en": "Day before Chuseok"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 8, LunarDay: 15, Offset: -1},
			{Name: "추석", Names: map[string]string{"en": "Chuseok"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 8, LunarDay: 15},
			{Name: "추석 다음날", Names: map[string]string{"en": "Day after Chuseok"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 8, LunarDay: 15, Offset: 1},
			{Name: "개천절", Names: map[string]string{"en": "National Foundation Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.October, Day: 3, Observed: true},
			{Name: "한글날", Names: map[string]string{"en": "Hangeul Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.October, Day: 9, Observed: true, StartYear: 2013},
			{Name: "크리스마스", Names: map[string]string{"en": "Christmas Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25},
		},
	}
}
