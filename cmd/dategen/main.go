package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zapponejosh/holiday-api/internal/dataset"
	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// This tool dumps the expanded holiday calendar for a country over a
// year range, for eyeballing rule changes against reference calendars.

func main() {
	country := flag.String("country", "US", "ISO 3166-1 country code")
	subdivision := flag.String("subdivision", "", "Optional subdivision code (e.g. TX, SCT)")
	from := flag.Int("from", 2024, "First year to expand")
	to := flag.Int("to", 2026, "Last year to expand (inclusive)")
	asCSV := flag.Bool("csv", false, "Emit CSV instead of a table")
	flag.Parse()

	if *to < *from {
		fmt.Fprintln(os.Stderr, "error: -to must not be before -from")
		os.Exit(2)
	}

	code := strings.ToUpper(*country)
	sub := strings.ToUpper(*subdivision)
	querier := holiday.NewQuerier(dataset.Default())

	if !*asCSV {
		fmt.Printf("=== Holiday Calendar: %s", code)
		if sub != "" {
			fmt.Printf("/%s", sub)
		}
		fmt.Printf(" %d-%d ===\n\n", *from, *to)
	} else {
		fmt.Println("date,name,category,observed")
	}

	categoryCounts := make(map[holiday.Category]int)
	total := 0

	for year := *from; year <= *to; year++ {
		holidays, err := querier.HolidaysFor(code, year, sub)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		for _, h := range holidays {
			categoryCounts[h.Category]++
			total++

			if *asCSV {
				fmt.Printf("%s,%s,%s,%t\n", h.Date, csvEscape(h.Name), h.Category, h.Observed)
				continue
			}

			marker := ""
			if h.Observed {
				marker = " (observed)"
			}
			fmt.Printf("%s  %-10s %s%s\n", h.Date, h.Category, h.Name, marker)
		}

		if !*asCSV {
			fmt.Println()
		}
	}

	if !*asCSV {
		fmt.Println("Holidays by category:")
		for _, cat := range []holiday.Category{holiday.CategoryPublic, holiday.CategoryBank, holiday.CategoryOptional} {
			if count, ok := categoryCounts[cat]; ok {
				fmt.Printf("  %-10s %d\n", string(cat)+":", count)
			}
		}
		fmt.Printf("  %-10s %d\n", "TOTAL:", total)
	}
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
