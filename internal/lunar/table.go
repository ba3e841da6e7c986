package lunar

import (
	"time"

	"github.com/zapponejosh/holiday-api/internal/calendar"
)

// anchorTable maps (system, Gregorian year, lunar month, lunar day) to the
// Gregorian date of that lunar day. Entries are precomputed from Hong Kong
// Observatory conversion tables. Extend the window here when new reference
// data is published; absent years simply make lunar rules inapplicable.
var anchorTable = map[anchorKey]calendar.Date{}

func put(sys System, month, day int, dates map[int][2]int) {
	for year, md := range dates {
		anchorTable[anchorKey{sys, year, month, day}] = calendar.Date{
			Year:  year,
			Month: time.Month(md[0]),
			Day:   md[1],
		}
	}
}

func init() {
	// Lunar 1/1: Lunar New Year (Chinese New Year, Seollal, Tết).
	put(SystemChinese, 1, 1, map[int][2]int{
		2000: {2, 5}, 2001: {1, 24}, 2002: {2, 12}, 2003: {2, 1},
		2004: {1, 22}, 2005: {2, 9}, 2006: {1, 29}, 2007: {2, 18},
		2008: {2, 7}, 2009: {1, 26}, 2010: {2, 14}, 2011: {2, 3},
		2012: {1, 23}, 2013: {2, 10}, 2014: {1, 31}, 2015: {2, 19},
		2016: {2, 8}, 2017: {1, 28}, 2018: {2, 16}, 2019: {2, 5},
		2020: {1, 25}, 2021: {2, 12}, 2022: {2, 1}, 2023: {1, 22},
		2024: {2, 10}, 2025: {1, 29}, 2026: {2, 17}, 2027: {2, 6},
		2028: {1, 26}, 2029: {2, 13}, 2030: {2, 3}, 2031: {1, 23},
		2032: {2, 11}, 2033: {1, 31}, 2034: {2, 19}, 2035: {2, 8},
	})

	// Lunar 5/5: Dragon Boat Festival.
	put(SystemChinese, 5, 5, map[int][2]int{
		2015: {6, 20}, 2016: {6, 9}, 2017: {5, 30}, 2018: {6, 18},
		2019: {6, 7}, 2020: {6, 25}, 2021: {6, 14}, 2022: {6, 3},
		2023: {6, 22}, 2024: {6, 10}, 2025: {5, 31}, 2026: {6, 19},
	})

	// Lunar 8/15: Mid-Autumn Festival (Chuseok).
	put(SystemChinese, 8, 15, map[int][2]int{
		2015: {9, 27}, 2016: {9, 15}, 2017: {10, 4}, 2018: {9, 24},
		2019: {9, 13}, 2020: {10, 1}, 2021: {9, 21}, 2022: {9, 10},
		2023: {9, 29}, 2024: {9, 17}, 2025: {10, 6}, 2026: {9, 25},
	})

	// Lunar 4/8: Buddha's Birthday.
	put(SystemChinese, 4, 8, map[int][2]int{
		2015: {5, 25}, 2016: {5, 14}, 2017: {5, 3}, 2018: {5, 22},
		2019: {5, 12}, 2020: {4, 30}, 2021: {5, 19}, 2022: {5, 8},
		2023: {5, 27}, 2024: {5, 15}, 2025: {5, 5}, 2026: {5, 24},
	})
}
