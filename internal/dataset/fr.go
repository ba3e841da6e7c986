package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Jours fériés in France. No weekend substitution.
func france() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "FR",
		Name:       "France",
		Observance: holiday.ObservanceNone,
		Rules: []holiday.Rule{
			{Name: "Jour de l'an", Names: map[string]string{"en": "New Year's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1},
			{Name: "Lundi de Pâques", Names: map[string]string{"en": "Easter Monday"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 1},
			{Name: "Fête du Travail", Names: map[string]string{"en": "Labour Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 1},
			{Name: "Victoire 1945", Names: map[string]string{"en": "Victory in Europe Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 8, StartYear: 1982},
			{Name: "Ascension", Names: map[string]string{"en": "Ascension Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 39},
			{Name: "Lundi de Pentecôte", Names: map[string]string{"en": "Whit Monday"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: 50},
			{Name: "Fête nationale", Names: map[string]string{"en": "Bastille Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.July, Day: 14},
			{Name: "Assomption", Names: map[string]string{"en": "Assumption Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.August, Day: 15},
			{Name: "Toussaint", Names: map[string]string{"en": "All Saints' Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 1},
			{Name: "Armistice 1918", Names: map[string]string{"en": "Armistice Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 11},
			{Name: "Noël", Names: map[string]string{"en": "Christmas Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25},
		},
		Subdivisions: map[string][]holiday.Rule{
			// Alsace-Moselle keeps two extra holidays from its period
			// under German law.
			"57": {
				{Name: "Vendredi saint", Names: map[string]string{"en": "Good Friday"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: -2},
				{Name: "Saint Étienne", Names: map[string]string{"en": "St Stephen's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 26},
			},
		},
	}
}
