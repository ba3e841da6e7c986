package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// National holidays in Spain. No weekend substitution at the national
// level (autonomous communities may move some, which this dataset does
// not model).
func spain() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "ES",
		Name:       "Spain",
		Observance: holiday.ObservanceNone,
		Rules: []holiday.Rule{
			{Name: "Año Nuevo", Names: map[string]string{"en": "New Year's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1},
			{Name: "Epifanía del Señor", Names: map[string]string{"en": "Epiphany"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 6},
			{Name: "Viernes Santo", Names: map[string]string{"en": "Good Friday"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: -2},
			{Name: "Fiesta del Trabajo", Names: map[string]string{"en": "Labour Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 1},
			{Name: "Asunción de la Virgen", Names: map[string]string{"en": "Assumption Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.August, Day: 15},
			{Name: "Fiesta Nacional de España", Names: map[string]string{"en": "National Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.October, Day: 12},
			{Name: "Todos los Santos", Names: map[string]string{"en": "All Saints' Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 1},
			{Name: "Día de la Constitución", Names: map[string]string{"en": "Constitution Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 6, StartYear: 1978},
			{Name: "Inmaculada Concepción", Names: map[string]string{"en": "Immaculate Conception"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 8},
			{Name: "Navidad", Names: map[string]string{"en": "Christmas Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25},
		},
		Subdivisions: map[string][]holiday.Rule{
			"CT": {
				{Name: "Sant Joan", Names: map[string]string{"en": "St John's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.June, Day: 24},
				{Name: "Diada Nacional de Catalunya", Names: map[string]string{"en": "National Day of Catalonia"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.September, Day: 11},
				{Name: "Sant Esteve", Names: map[string]string{"en": "St Stephen's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 26},
			},
		},
	}
}
