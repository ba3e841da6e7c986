package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Gesetzliche Feiertage in Germany. Germany has no weekend substitution;
// a holiday on a Saturday simply stays there. Several Catholic feasts are
// only observed in particular Länder and live in subdivision overlays.
func germany() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "DE",
		Name:       "Germany",
		Observance: holiday.ObservanceNone,
		Rules: []holiday.Rule{
			{Name: "Neujahr", Names: map[string]string{"en": "New Year's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1},
			{Name: "Karfreitag", Names: map[string]string{"en": "Good Friday"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: -2},
			{Name: "Ostermontag", Names: map[string]string{"en": "Easter Monday"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 1},
			{Name: "Tag der Arbeit", Names: map[string]string{"en": "Labour Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 1},
			{Name: "Christi Himmelfahrt", Names: map[string]string{"en": "Ascension Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 39},
			{Name: "Pfingstmontag", Names: map[string]string{"en": "Whit Monday"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 50},
			{Name: "Tag der Deutschen Einheit", Names: map[string]string{"en": "Day of German Unity"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.October, Day: 3, StartYear: 1990},
			{Name: "Erster Weihnachtstag", Names: map[string]string{"en": "Christmas Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25},
			{Name: "Zweiter Weihnachtstag", Names: map[string]string{"en": "Second Day of Christmas"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 26},
		},
		Subdivisions: map[string][]holiday.Rule{
			"BW": {
				{Name: "Heilige Drei Könige", Names: map[string]string{"en": "Epiphany"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 6},
				{Name: "Fronleichnam", Names: map[string]string{"en": "Corpus Christi"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 60},
				{Name: "Allerheiligen", Names: map[string]string{"en": "All Saints' Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 1},
			},
			"BY": {
				{Name: "Heilige Drei Könige", Names: map[string]string{"en": "Epiphany"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 6},
				{Name: "Fronleichnam", Names: map[string]string{"en": "Corpus Christi"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 60},
				{Name: "Mariä Himmelfahrt", Names: map[string]string{"en": "Assumption Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.August, Day: 15},
				{Name: "Allerheiligen", Names: map[string]string{"en": "All Saints' Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 1},
			},
			"BE": {
				{Name: "Internationaler Frauentag", Names: map[string]string{"en": "International Women's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.March, Day: 8, StartYear: 2019},
			},
		},
	}
}
