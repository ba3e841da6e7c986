package dataset

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Feriados nacionais in Brazil. Carnival and Corpus Christi are
// ponto facultativo (optional) at the federal level.
func brazil() *holiday.CountryCalendar {
	return &holiday.CountryCalendar{
		Code:       "BR",
		Name:       "Brazil",
		Observance: holiday.ObservanceNone,
		Rules: []holiday.Rule{
			{Name: "Confraternização Universal", Names: map[string]string{"en": "New Year's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.January, Day: 1},
			{Name: "Carnaval", Names: map[string]string{"en": "Carnival"}, Category: holiday.CategoryOptional, Kind: holiday.KindEasterOffset, Offset: -47},
			{Name: "Sexta-feira Santa", Names: map[string]string{"en": "Good Friday"}, Category: holiday.CategoryPublic, Kind: holiday.KindEasterOffset, Offset: -2},
			{Name: "Tiradentes", Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.April, Day: 21},
			{Name: "Dia do Trabalhador", Names: map[string]string{"en": "Labour Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.May, Day: 1},
			{Name: "Corpus Christi", Category: holiday.CategoryOptional, Kind: holiday.KindEasterOffset, Offset: 60},
			{Name: "Independência do Brasil", Names: map[string]string{"en": "Independence Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.September, Day: 7},
			{Name: "Nossa Senhora Aparecida", Names: map[string]string{"en": "Our Lady of Aparecida"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.October, Day: 12, StartYear: 1980},
			{Name: "Finados", Names: map[string]string{"en": "All Souls' Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 2},
			{Name: "Proclamação da República", Names: map[string]string{"en": "Republic Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 15},
			{Name: "Dia Nacional de Zumbi e da Consciência Negra", Names: map[string]string{"en": "Black Awareness Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.November, Day: 20, StartYear: 2024},
			{Name: "Natal", Names: map[string]string{"en": "Christmas Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.December, Day: 25},
		},
		Subdivisions: map[string][]holiday.Rule{
			"SP": {
				{Name: "Revolução Constitucionalista", Names: map[string]string{"en": "Constitutionalist Revolution"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.July, Day: 9, StartYear: 1997},
			},
			"RJ": {
				{Name: "São Jorge", Names: map[string]string{"en": "St George's Day"}, Category: holiday.CategoryPublic, Kind: holiday.KindFixed, Month: time.April, Day: 23},
			},
		},
	}
}
