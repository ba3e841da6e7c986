package dataset

import (
	"testing"
	"time"

	"github.com/zapponejosh/holiday-api/internal/calendar"
	"github.com/zapponejosh/holiday-api/internal/holiday"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	want := []string{"AU", "BR", "CA", "CN", "DE", "ES", "FR", "GB", "IE", "JP", "KR", "NZ", "US"}
	got := reg.Codes()
	if len(got) != len(want) {
		t.Fatalf("Codes() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Codes()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDatasetRulesAreValid(t *testing.T) {
	reg := Default()

	for _, code := range reg.Codes() {
		c, _ := reg.Lookup(code)
		if c.Name == "" {
			t.Errorf("%s: empty display name", code)
		}
		check := func(where string, rules []holiday.Rule) {
			for _, r := range rules {
				if r.Name == "" {
					t.Errorf("%s/%s: rule with empty name", code, where)
				}
				if !r.Category.IsValid() {
					t.Errorf("%s/%s: rule %q has invalid category %q", code, where, r.Name, r.Category)
				}
				if r.StartYear != 0 && r.EndYear != 0 && r.EndYear < r.StartYear {
					t.Errorf("%s/%s: rule %q has inverted validity window", code, where, r.Name)
				}
			}
		}
		check("base", c.Rules)
		for sub, rules := range c.Subdivisions {
			check(sub, rules)
		}
	}
}

// Every expansion must stay inside the queried year, be sorted, and be
// free of duplicate (date, name) pairs — for every country and a spread
// of years.
func TestDatasetExpansionInvariants(t *testing.T) {
	q := holiday.NewQuerier(Default())

	for _, code := range Default().Codes() {
		for _, year := range []int{1995, 2010, 2021, 2024, 2025, 2100} {
			holidays, err := q.HolidaysFor(code, year, "")
			if err != nil {
				t.Fatalf("HolidaysFor(%s, %d) error: %v", code, year, err)
			}

			seen := make(map[string]bool)
			for i, h := range holidays {
				if h.Date.Year != year {
					t.Errorf("%s %d: %q on %s outside queried year", code, year, h.Name, h.Date)
				}
				if i > 0 && holidays[i].Date.Before(holidays[i-1].Date) {
					t.Errorf("%s %d: result not sorted at %q", code, year, h.Name)
				}
				key := h.Date.String() + "|" + h.Name
				if seen[key] {
					t.Errorf("%s %d: duplicate (date, name) %s %q", code, year, h.Date, h.Name)
				}
				seen[key] = true
			}
		}
	}
}

func TestUnitedStates(t *testing.T) {
	q := holiday.NewQuerier(Default())

	h2024, err := q.HolidaysFor("US", 2024, "")
	if err != nil {
		t.Fatalf("HolidaysFor(US, 2024) error: %v", err)
	}

	wantDates := map[string]calendar.Date{
		"New Year's Day":                       calendar.MustDate(2024, time.January, 1),
		"Martin Luther King Jr. Day":           calendar.MustDate(2024, time.January, 15),
		"Memorial Day":                         calendar.MustDate(2024, time.May, 27),
		"Juneteenth National Independence Day": calendar.MustDate(2024, time.June, 19),
		"Independence Day":                     calendar.MustDate(2024, time.July, 4),
		"Thanksgiving Day":                     calendar.MustDate(2024, time.November, 28),
		"Christmas Day":                        calendar.MustDate(2024, time.December, 25),
	}
	for name, want := range wantDates {
		found := false
		for _, h := range h2024 {
			if h.Name == name {
				found = true
				if h.Date != want {
					t.Errorf("US 2024 %q = %s, want %s", name, h.Date, want)
				}
			}
		}
		if !found {
			t.Errorf("US 2024 missing %q", name)
		}
	}

	// Juneteenth starts in 2021.
	h2020, err := q.HolidaysFor("US", 2020, "")
	if err != nil {
		t.Fatalf("HolidaysFor(US, 2020) error: %v", err)
	}
	for _, h := range h2020 {
		if h.Name == "Juneteenth National Independence Day" {
			t.Error("US 2020 contains Juneteenth, which starts 2021")
		}
	}

	// July 4 2021 fell on a Sunday and was observed Monday July 5.
	obs, err := q.IsHoliday("US", calendar.MustDate(2021, time.July, 5), "")
	if err != nil {
		t.Fatalf("IsHoliday() error: %v", err)
	}
	if obs == nil || obs.Name != "Independence Day" || !obs.Observed {
		t.Errorf("US 2021-07-05 = %+v, want observed Independence Day", obs)
	}

	// Texas overlay is additive.
	tx, err := q.HolidaysFor("US", 2024, "TX")
	if err != nil {
		t.Fatalf("HolidaysFor(US, 2024, TX) error: %v", err)
	}
	found := false
	for _, h := range tx {
		if h.Name == "Texas Independence Day" {
			found = true
			if h.Subdivision != "TX" {
				t.Errorf("Texas Independence Day Subdivision = %q, want TX", h.Subdivision)
			}
		}
	}
	if !found {
		t.Error("US/TX 2024 missing Texas Independence Day")
	}
}

func TestUnitedKingdomSubdivisions(t *testing.T) {
	q := holiday.NewQuerier(Default())

	sct, err := q.HolidaysFor("GB", 2024, "SCT")
	if err != nil {
		t.Fatalf("HolidaysFor(GB, 2024, SCT) error: %v", err)
	}
	var jan2, summerSCT *calendar.Date
	for _, h := range sct {
		switch h.Name {
		case "2nd January":
			d := h.Date
			jan2 = &d
		case "Summer Bank Holiday":
			d := h.Date
			summerSCT = &d
		}
	}
	if jan2 == nil {
		t.Error("GB/SCT missing 2nd January")
	} else if *jan2 != calendar.MustDate(2024, time.January, 2) {
		t.Errorf("GB/SCT 2nd January = %s, want 2024-01-02", *jan2)
	}
	// Scotland: first Monday of August 2024 = Aug 5.
	if summerSCT == nil {
		t.Error("GB/SCT missing Summer Bank Holiday")
	} else if *summerSCT != calendar.MustDate(2024, time.August, 5) {
		t.Errorf("GB/SCT Summer Bank Holiday = %s, want 2024-08-05", *summerSCT)
	}

	// England: last Monday of August 2024 = Aug 26.
	eng, err := q.HolidaysFor("GB", 2024, "ENG")
	if err != nil {
		t.Fatalf("HolidaysFor(GB, 2024, ENG) error: %v", err)
	}
	for _, h := range eng {
		if h.Name == "Summer Bank Holiday" {
			if want := calendar.MustDate(2024, time.August, 26); h.Date != want {
				t.Errorf("GB/ENG Summer Bank Holiday = %s, want %s", h.Date, want)
			}
		}
	}
}

func TestGermanyNoObservance(t *testing.T) {
	q := holiday.NewQuerier(Default())

	// 2022-12-25 was a Sunday; Germany does not substitute.
	h, err := q.IsHoliday("DE", calendar.MustDate(2022, time.December, 25), "")
	if err != nil {
		t.Fatalf("IsHoliday() error: %v", err)
	}
	if h == nil {
		t.Fatal("DE 2022-12-25 = nil, want Erster Weihnachtstag")
	}
	if h.Observed {
		t.Error("DE Christmas Observed = true, want false (no substitution)")
	}
	if h.Names["en"] != "Christmas Day" {
		t.Errorf("DE Christmas en name = %q, want %q", h.Names["en"], "Christmas Day")
	}

	// Day of German Unity starts in 1990.
	h1989, err := q.HolidaysFor("DE", 1989, "")
	if err != nil {
		t.Fatalf("HolidaysFor(DE, 1989) error: %v", err)
	}
	for _, hh := range h1989 {
		if hh.Name == "Tag der Deutschen Einheit" {
			t.Error("DE 1989 contains Tag der Deutschen Einheit, which starts 1990")
		}
	}
}

func TestChinaLunarFestivals(t *testing.T) {
	q := holiday.NewQuerier(Default())

	h2024, err := q.HolidaysFor("CN", 2024, "")
	if err != nil {
		t.Fatalf("HolidaysFor(CN, 2024) error: %v", err)
	}

	wantDates := map[string]calendar.Date{
		"春节":  calendar.MustDate(2024, time.February, 10),
		"端午节": calendar.MustDate(2024, time.June, 10),
		"中秋节": calendar.MustDate(2024, time.September, 17),
	}
	for name, want := range wantDates {
		found := false
		for _, h := range h2024 {
			if h.Name == name {
				found = true
				if h.Date != want {
					t.Errorf("CN 2024 %q = %s, want %s", name, h.Date, want)
				}
			}
		}
		if !found {
			t.Errorf("CN 2024 missing %q", name)
		}
	}

	// Second day of Chinese New Year is anchor + 1.
	for _, h := range h2024 {
		if h.Name == "春节 (第二天)" {
			if want := calendar.MustDate(2024, time.February, 11); h.Date != want {
				t.Errorf("CN second CNY day = %s, want %s", h.Date, want)
			}
		}
	}

	// Outside the lunar table the lunisolar festivals drop out but the
	// fixed holidays remain.
	h1950, err := q.HolidaysFor("CN", 1950, "")
	if err != nil {
		t.Fatalf("HolidaysFor(CN, 1950) error: %v", err)
	}
	for _, h := range h1950 {
		if h.Name == "春节" {
			t.Error("CN 1950 contains 春节 despite no lunar data")
		}
	}
	foundNational := false
	for _, h := range h1950 {
		if h.Name == "国庆节" {
			foundNational = true
		}
	}
	if !foundNational {
		t.Error("CN 1950 missing 国庆节")
	}
}

func TestJapanHappyMondays(t *testing.T) {
	q := holiday.NewQuerier(Default())

	h2024, err := q.HolidaysFor("JP", 2024, "")
	if err != nil {
		t.Fatalf("HolidaysFor(JP, 2024) error: %v", err)
	}

	// Second Monday of January 2024 = Jan 8.
	for _, h := range h2024 {
		if h.Name == "成人の日" {
			if want := calendar.MustDate(2024, time.January, 8); h.Date != want {
				t.Errorf("JP Coming of Age Day = %s, want %s", h.Date, want)
			}
		}
	}

	// The Feb 23 Emperor's Birthday begins with the Reiwa era in 2020.
	h2019, err := q.HolidaysFor("JP", 2019, "")
	if err != nil {
		t.Fatalf("HolidaysFor(JP, 2019) error: %v", err)
	}
	for _, h := range h2019 {
		if h.Name == "天皇誕生日" {
			t.Error("JP 2019 contains Feb 23 Emperor's Birthday, which starts 2020")
		}
	}
}
