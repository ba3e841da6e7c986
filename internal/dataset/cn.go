package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
	"github.com/zapponejosh/holiday-api/internal/lunar"
)

// Public holidays in mainland China. The lunisolar festivals resolve via
// the embedded conversion table and silently drop out for years the table
// doesn't cover. Qingming is strictly a solar-term holiday (April 4 or 5);
// April 4 is used here, which matches most years in the table window.
func china() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:        "CN",
		Name:        "China",
		Observance:  holiday.ObservanceNone,
		LunarSystem: lunar.SystemChinese,
		Rules: []holiday.Rule{
			{Name: "元旦", Names: map[string]string{"en": "New Year's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1},
			{Name: "春节", Names: map[string]string{"en": "Chinese New Year"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 1, LunarDay: 1},
			{Name: "春节 (第二天)", Names: map[string]string{"en": "Chinese New Year (second day)"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 1, LunarDay: 1, Offset: 1},
			{Name: "春节 (第三天)", Names: map[string]string{"en": "Chinese New Year (third day)"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 1, LunarDay: 1, Offset: 2},
			{Name: "清明节", Names: map[string]string{"en": "Qingming Festival"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.April, Day: 4},
			{Name: "劳动节", Names: map[string]string{"en": "Labour Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 1},
			{Name: "端午节", Names: map[string]string{"en": "Dragon Boat Festival"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 5, LunarDay: 5, StartYear: 2008},
			{Name: "中秋节", Names: map[string]string{"en": "Mid-Autumn Festival"}, Category: holiday.CategoryPublic, Kind: holiday.KindLunar, LunarMonth: 8, LunarDay: 15, StartYear: 2008},
			{Name: "国庆节", Names: map[string]string{"en": "National Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.October, Day: 1, StartYear: 1949},
			{Name: "国庆节 (第二天)", Names: map[string]string{"en": "National Day (second day)"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.October, Day: 2, StartYear: 1949},
			{Name: "国庆节 (第三天)", Names: map[string]string{"en": "National Day (third day)"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.October, Day: 3, StartYear: 1949},
		},
	}
}
