package holiday

import (
	"testing"
	"time"

	"github.com/zapponejosh/holiday-api/internal/calendar"
)

// testCountry builds a small synthetic calendar exercising each rule kind.
func testCountry() *CountryCalendar {
	return &CountryCalendar{
		Code:       "XX",
		Name:       "Testland",
		Observance: ObservanceSundayToMonday,
		Rules: []Rule{
			{Name: "New Year's Day", Category: CategoryPublic, Kind: KindFixed, Month: time.January, Day: 1, Observed: true},
			{Name: "Good Friday", Category: CategoryPublic, Kind: KindEasterOffset, Offset: -2},
			{Name: "Summer Day", Category: CategoryPublic, Kind: KindFixed, Month: time.July, Day: 4, Observed: true},
			{Name: "Harvest Day", Category: CategoryPublic, Kind: KindNthWeekday, Month: time.November, Weekday: time.Thursday, Ordinal: 4},
			{Name: "Founders Day", Category: CategoryBank, Kind: KindFixed, Month: time.March, Day: 12, StartYear: 2010},
			{Name: "Old Kings Day", Category: CategoryPublic, Kind: KindFixed, Month: time.April, Day: 30, EndYear: 2013},
			{Name: "Fifth Monday", Category: CategoryOptional, Kind: KindNthWeekday, Month: time.February, Weekday: time.Monday, Ordinal: 5},
			{Name: "Lunar New Year", Category: CategoryPublic, Kind: KindLunar, LunarMonth: 1, LunarDay: 1},
		},
		Subdivisions: map[string][]Rule{
			"NR": {
				{Name: "Northern Day", Category: CategoryPublic, Kind: KindFixed, Month: time.June, Day: 5},
			},
			"SR": {
				{Name: "Summer Day", Category: CategoryPublic, Kind: KindFixed, Month: time.August, Day: 1, OverridesBase: true},
			},
		},
	}
}

func findHoliday(holidays []Holiday, name string) *Holiday {
	for i := range holidays {
		if holidays[i].Name == name {
			return &holidays[i]
		}
	}
	return nil
}

func TestExpandYearSortedAndInYear(t *testing.T) {
	holidays, err := expandYear(testCountry(), 2024, "")
	if err != nil {
		t.Fatalf("expandYear() error: %v", err)
	}
	if len(holidays) == 0 {
		t.Fatal("expandYear() returned no holidays")
	}

	for i := range holidays {
		if holidays[i].Date.Year != 2024 {
			t.Errorf("holiday %q on %s outside queried year", holidays[i].Name, holidays[i].Date)
		}
		if i > 0 && holidays[i].Date.Before(holidays[i-1].Date) {
			t.Errorf("result not sorted: %s after %s", holidays[i].Date, holidays[i-1].Date)
		}
	}
}

func TestExpandYearRuleKinds(t *testing.T) {
	holidays, err := expandYear(testCountry(), 2024, "")
	if err != nil {
		t.Fatalf("expandYear() error: %v", err)
	}

	tests := []struct {
		name string
		want calendar.Date
	}{
		{"New Year's Day", calendar.MustDate(2024, time.January, 1)},
		{"Good Friday", calendar.MustDate(2024, time.March, 29)}, // Easter 2024-03-31 minus 2
		{"Harvest Day", calendar.MustDate(2024, time.November, 28)},
		{"Lunar New Year", calendar.MustDate(2024, time.February, 10)},
	}
	for _, tt := range tests {
		h := findHoliday(holidays, tt.name)
		if h == nil {
			t.Errorf("missing holiday %q", tt.name)
			continue
		}
		if h.Date != tt.want {
			t.Errorf("%q = %s, want %s", tt.name, h.Date, tt.want)
		}
	}
}

func TestExpandYearValidityWindow(t *testing.T) {
	c := testCountry()

	h2009, err := expandYear(c, 2009, "")
	if err != nil {
		t.Fatalf("expandYear(2009) error: %v", err)
	}
	if findHoliday(h2009, "Founders Day") != nil {
		t.Error("Founders Day (start 2010) present in 2009")
	}

	h2010, err := expandYear(c, 2010, "")
	if err != nil {
		t.Fatalf("expandYear(2010) error: %v", err)
	}
	if findHoliday(h2010, "Founders Day") == nil {
		t.Error("Founders Day (start 2010) missing in 2010")
	}

	h2014, err := expandYear(c, 2014, "")
	if err != nil {
		t.Fatalf("expandYear(2014) error: %v", err)
	}
	if findHoliday(h2014, "Old Kings Day") != nil {
		t.Error("Old Kings Day (end 2013) present in 2014")
	}
	if findHoliday(h2010, "Old Kings Day") == nil {
		t.Error("Old Kings Day (end 2013) missing in 2010")
	}
}

func TestExpandYearSkipConditions(t *testing.T) {
	c := testCountry()

	// February 2023 has only four Mondays; the fifth-Monday rule is
	// silently inapplicable.
	h2023, err := expandYear(c, 2023, "")
	if err != nil {
		t.Fatalf("expandYear(2023) error: %v", err)
	}
	if findHoliday(h2023, "Fifth Monday") != nil {
		t.Error("Fifth Monday present in 2023 despite only four Mondays in February")
	}

	// January 2024 has five Mondays; so does February 2027, but use a
	// year where it exists: February 2016 had five Mondays (1, 8, 15, 22, 29).
	h2016, err := expandYear(c, 2016, "")
	if err != nil {
		t.Fatalf("expandYear(2016) error: %v", err)
	}
	if findHoliday(h2016, "Fifth Monday") == nil {
		t.Error("Fifth Monday missing in 2016 despite five Mondays in February")
	}

	// Outside the lunar table window the lunar rule is skipped, not an error.
	h1950, err := expandYear(c, 1950, "")
	if err != nil {
		t.Fatalf("expandYear(1950) error: %v", err)
	}
	if findHoliday(h1950, "Lunar New Year") != nil {
		t.Error("Lunar New Year present in 1950 despite missing table data")
	}
	if findHoliday(h1950, "New Year's Day") == nil {
		t.Error("fixed rules should still expand when a lunar rule is skipped")
	}
}

func TestExpandYearMalformedRuleSkipped(t *testing.T) {
	// A rule with broken variant fields yields no dates but must not
	// abort expansion of the country's remaining rules.
	c := &CountryCalendar{
		Code: "XX",
		Name: "Testland",
		Rules: []Rule{
			{Name: "Broken Day", Category: CategoryPublic, Kind: KindNthWeekday, Month: time.November, Weekday: time.Thursday, Ordinal: 0},
			{Name: "Bad Month Day", Category: CategoryPublic, Kind: KindNthWeekday, Month: 13, Weekday: time.Monday, Ordinal: 1},
			{Name: "New Year's Day", Category: CategoryPublic, Kind: KindFixed, Month: time.January, Day: 1},
		},
	}

	holidays, err := expandYear(c, 2024, "")
	if err != nil {
		t.Fatalf("expandYear() error: %v", err)
	}
	if findHoliday(holidays, "Broken Day") != nil || findHoliday(holidays, "Bad Month Day") != nil {
		t.Error("malformed rules produced holidays")
	}
	if findHoliday(holidays, "New Year's Day") == nil {
		t.Error("valid rules should still expand when a malformed rule is skipped")
	}
}

func TestExpandYearObservance(t *testing.T) {
	// 2021-07-04 was a Sunday; Summer Day observes Monday July 5.
	holidays, err := expandYear(testCountry(), 2021, "")
	if err != nil {
		t.Fatalf("expandYear(2021) error: %v", err)
	}

	summer := findHoliday(holidays, "Summer Day")
	if summer == nil {
		t.Fatal("missing Summer Day")
	}
	if want := calendar.MustDate(2021, time.July, 5); summer.Date != want {
		t.Errorf("Summer Day = %s, want observed date %s", summer.Date, want)
	}
	if !summer.Observed {
		t.Error("Summer Day Observed = false, want true")
	}

	// Good Friday is not flagged Observed and must never shift.
	gf := findHoliday(holidays, "Good Friday")
	if gf == nil {
		t.Fatal("missing Good Friday")
	}
	if want := calendar.MustDate(2021, time.April, 2); gf.Date != want {
		t.Errorf("Good Friday = %s, want %s", gf.Date, want)
	}
}

func TestExpandYearObservanceYearBoundary(t *testing.T) {
	c := testCountry()
	c.Observance = ObservanceUSFederal

	// 2022-01-01 was a Saturday; shifting back would land in 2021, so
	// the base date is retained and not marked observed.
	holidays, err := expandYear(c, 2022, "")
	if err != nil {
		t.Fatalf("expandYear(2022) error: %v", err)
	}
	ny := findHoliday(holidays, "New Year's Day")
	if ny == nil {
		t.Fatal("missing New Year's Day")
	}
	if want := calendar.MustDate(2022, time.January, 1); ny.Date != want {
		t.Errorf("New Year's Day = %s, want unshifted %s", ny.Date, want)
	}
	if ny.Observed {
		t.Error("New Year's Day Observed = true, want false when shift is suppressed")
	}
}

func TestExpandYearSubdivisions(t *testing.T) {
	c := testCountry()

	base, err := expandYear(c, 2024, "")
	if err != nil {
		t.Fatalf("expandYear(base) error: %v", err)
	}
	if findHoliday(base, "Northern Day") != nil {
		t.Error("subdivision rule leaked into base expansion")
	}

	nr, err := expandYear(c, 2024, "NR")
	if err != nil {
		t.Fatalf("expandYear(NR) error: %v", err)
	}
	if findHoliday(nr, "Northern Day") == nil {
		t.Error("Northern Day missing from NR expansion")
	}
	if findHoliday(nr, "New Year's Day") == nil {
		t.Error("base rules must still apply within a subdivision")
	}
	if len(nr) != len(base)+1 {
		t.Errorf("NR expansion has %d holidays, want %d", len(nr), len(base)+1)
	}

	// Unknown subdivision falls back to the base rule set.
	unknown, err := expandYear(c, 2024, "QQ")
	if err != nil {
		t.Fatalf("expandYear(QQ) error: %v", err)
	}
	if len(unknown) != len(base) {
		t.Errorf("unknown subdivision expansion has %d holidays, want %d", len(unknown), len(base))
	}
}

func TestExpandYearOverridesBase(t *testing.T) {
	c := testCountry()

	sr, err := expandYear(c, 2024, "SR")
	if err != nil {
		t.Fatalf("expandYear(SR) error: %v", err)
	}

	summer := findHoliday(sr, "Summer Day")
	if summer == nil {
		t.Fatal("missing Summer Day in SR")
	}
	if want := calendar.MustDate(2024, time.August, 1); summer.Date != want {
		t.Errorf("Summer Day in SR = %s, want overridden date %s", summer.Date, want)
	}

	// The base July 4 version must be gone, not merely outsorted.
	count := 0
	for _, h := range sr {
		if h.Name == "Summer Day" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Summer Day appears %d times in SR, want 1", count)
	}
}

func TestExpandYearDeduplicates(t *testing.T) {
	c := &CountryCalendar{
		Code: "XX",
		Rules: []Rule{
			{Name: "Doubled", Category: CategoryPublic, Kind: KindFixed, Month: time.May, Day: 1},
			{Name: "Doubled", Category: CategoryPublic, Kind: KindFixed, Month: time.May, Day: 1},
			{Name: "Also May Day", Category: CategoryPublic, Kind: KindFixed, Month: time.May, Day: 1},
		},
	}

	holidays, err := expandYear(c, 2024, "")
	if err != nil {
		t.Fatalf("expandYear() error: %v", err)
	}
	if len(holidays) != 2 {
		t.Fatalf("expandYear() returned %d holidays, want 2 (duplicate collapsed, distinct name kept)", len(holidays))
	}
	// Two distinct names on the same date are both retained, in rule order.
	if holidays[0].Name != "Doubled" || holidays[1].Name != "Also May Day" {
		t.Errorf("tie order = %q, %q; want rule insertion order", holidays[0].Name, holidays[1].Name)
	}
}

func TestExpandYearDeterministic(t *testing.T) {
	c := testCountry()
	first, err := expandYear(c, 2024, "NR")
	if err != nil {
		t.Fatalf("expandYear() error: %v", err)
	}
	second, err := expandYear(c, 2024, "NR")
	if err != nil {
		t.Fatalf("expandYear() error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Date != second[i].Date || first[i].Name != second[i].Name {
			t.Errorf("position %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
