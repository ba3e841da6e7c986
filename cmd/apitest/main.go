package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Holiday is one entry of an expanded calendar
type Holiday struct {
	Date        string            `json:"date"`
	Name        string            `json:"name"`
	Names       map[string]string `json:"names,omitempty"`
	Category    string            `json:"category"`
	Country     string            `json:"country"`
	Subdivision string            `json:"subdivision,omitempty"`
	Observed    bool              `json:"observed"`
}

// HolidaysResponse is the response for /holidays/{country}/{year}
type HolidaysResponse struct {
	Country     string    `json:"country"`
	Year        int       `json:"year"`
	Subdivision string    `json:"subdivision"`
	Holidays    []Holiday `json:"holidays"`
	Count       int       `json:"count"`
}

// CheckResponse is the response for /holidays/check
type CheckResponse struct {
	Country   string   `json:"country"`
	Date      string   `json:"date"`
	IsHoliday bool     `json:"is_holiday"`
	Holiday   *Holiday `json:"holiday"`
}

// NextResponse is the response for /holidays/next
type NextResponse struct {
	Country string   `json:"country"`
	After   string   `json:"after"`
	Holiday *Holiday `json:"holiday"`
}

// CountriesResponse is the response for /countries
type CountriesResponse struct {
	Countries []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"countries"`
	Count int `json:"count"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status    string `json:"status"`
	Countries int    `json:"countries"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Holiday API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	// Run test groups
	tr.testHealth()
	tr.testCountries()
	tr.testKnownHolidays()
	tr.testObservance()
	tr.testSubdivisions()
	tr.testCheckAndNext()
	tr.testEdgeCases()

	// Print summary
	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := tr.parseDataAs(resp, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess(fmt.Sprintf("Health check passed (%d countries)", health.Countries))
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testCountries() {
	tr.printSection("Supported Countries")

	resp, err := tr.get("/api/v1/countries")
	if err != nil {
		tr.recordError("Countries", err.Error())
		return
	}

	var data CountriesResponse
	if err := tr.parseDataAs(resp, &data); err != nil {
		tr.recordError("Countries", err.Error())
		return
	}

	if data.Count == 0 {
		tr.recordError("Countries", "Empty country list")
		return
	}
	tr.recordSuccess(fmt.Sprintf("%d countries supported", data.Count))

	// Codes must come back sorted
	for i := 1; i < len(data.Countries); i++ {
		if data.Countries[i].Code < data.Countries[i-1].Code {
			tr.recordError("Countries", "Country list not sorted by code")
			return
		}
	}
	tr.recordSuccess("Country list sorted by code")
}

func (tr *TestRunner) testKnownHolidays() {
	tr.printSection("Known Holiday Dates")

	testCases := []struct {
		country     string
		year        int
		date        string
		name        string
		description string
	}{
		{"US", 2024, "2024-11-28", "Thanksgiving Day", "4th Thursday of November"},
		{"US", 2024, "2024-01-15", "Martin Luther King Jr. Day", "3rd Monday of January"},
		{"US", 2024, "2024-06-19", "Juneteenth National Independence Day", "fixed, valid from 2021"},
		{"GB", 2024, "2024-03-29", "Good Friday", "Easter - 2 days"},
		{"DE", 2024, "2024-10-03", "Tag der Deutschen Einheit", "fixed, valid from 1990"},
		{"CN", 2024, "2024-02-10", "春节", "lunisolar new year"},
		{"JP", 2024, "2024-01-08", "成人の日", "2nd Monday of January"},
		{"BR", 2024, "2024-05-30", "Corpus Christi", "Easter + 60 days"},
	}

	for _, tc := range testCases {
		holidays, err := tr.fetchYear(tc.country, tc.year, "")
		if err != nil {
			tr.recordError(tc.country, err.Error())
			continue
		}

		found := false
		for _, h := range holidays {
			if h.Name == tc.name {
				found = true
				if h.Date == tc.date {
					tr.recordSuccess(fmt.Sprintf("%s %d: %s on %s (%s)",
						tc.country, tc.year, tc.name, h.Date, tc.description))
				} else {
					tr.recordError(tc.country, fmt.Sprintf("%s on %s, expected %s", tc.name, h.Date, tc.date))
				}
				break
			}
		}
		if !found {
			tr.recordError(tc.country, fmt.Sprintf("%d missing %q", tc.year, tc.name))
		}
	}
}

func (tr *TestRunner) testObservance() {
	tr.printSection("Observance Shifts")

	// July 4 2021 fell on a Sunday
	var check CheckResponse
	resp, err := tr.get("/api/v1/holidays/check?country=US&date=2021-07-05")
	if err != nil {
		tr.recordError("Observance", err.Error())
		return
	}
	if err := tr.parseDataAs(resp, &check); err != nil {
		tr.recordError("Observance", err.Error())
		return
	}

	if check.IsHoliday && check.Holiday != nil && check.Holiday.Observed {
		tr.recordSuccess("US 2021-07-05 is observed Independence Day")
	} else {
		tr.recordError("Observance", "US 2021-07-05 should be an observed holiday")
	}

	// Germany never substitutes: Christmas 2022 was a Sunday
	resp, err = tr.get("/api/v1/holidays/check?country=DE&date=2022-12-26")
	if err != nil {
		tr.recordError("Observance (DE)", err.Error())
		return
	}
	if err := tr.parseDataAs(resp, &check); err != nil {
		tr.recordError("Observance (DE)", err.Error())
		return
	}
	// Dec 26 is its own holiday in Germany, never a substitute day
	if check.IsHoliday && check.Holiday != nil && !check.Holiday.Observed {
		tr.recordSuccess("DE 2022-12-26 is Zweiter Weihnachtstag, not a substitute")
	} else {
		tr.recordError("Observance (DE)", "Unexpected result for DE 2022-12-26")
	}
}

func (tr *TestRunner) testSubdivisions() {
	tr.printSection("Subdivision Overlays")

	base, err := tr.fetchYear("GB", 2024, "")
	if err != nil {
		tr.recordError("GB base", err.Error())
		return
	}
	sct, err := tr.fetchYear("GB", 2024, "SCT")
	if err != nil {
		tr.recordError("GB/SCT", err.Error())
		return
	}

	if len(sct) > len(base) {
		tr.recordSuccess(fmt.Sprintf("GB/SCT has %d holidays vs %d base", len(sct), len(base)))
	} else {
		tr.recordError("GB/SCT", "Scotland overlay added no holidays")
	}

	// Unknown subdivision of a known country falls back to base rules
	fallback, err := tr.fetchYear("GB", 2024, "ZZZ")
	if err != nil {
		tr.recordError("GB/ZZZ", err.Error())
		return
	}
	if len(fallback) == len(base) {
		tr.recordSuccess("Unknown subdivision falls back to base rules")
	} else {
		tr.recordError("GB/ZZZ", "Unknown subdivision should equal base rules")
	}
}

func (tr *TestRunner) testCheckAndNext() {
	tr.printSection("Check and Next")

	// Plain miss
	var check CheckResponse
	resp, err := tr.get("/api/v1/holidays/check?country=US&date=2024-03-05")
	if err != nil {
		tr.recordError("Check miss", err.Error())
		return
	}
	if err := tr.parseDataAs(resp, &check); err != nil {
		tr.recordError("Check miss", err.Error())
		return
	}
	if !check.IsHoliday {
		tr.recordSuccess("US 2024-03-05 correctly not a holiday")
	} else {
		tr.recordError("Check miss", "US 2024-03-05 should not be a holiday")
	}

	// Next crosses the year boundary
	var next NextResponse
	resp, err = tr.get("/api/v1/holidays/next?country=US&date=2024-12-26")
	if err != nil {
		tr.recordError("Next", err.Error())
		return
	}
	if err := tr.parseDataAs(resp, &next); err != nil {
		tr.recordError("Next", err.Error())
		return
	}
	if next.Holiday != nil && next.Holiday.Date == "2025-01-01" {
		tr.recordSuccess("Next after 2024-12-26 is New Year's Day 2025")
	} else {
		tr.recordError("Next", fmt.Sprintf("Expected 2025-01-01, got %+v", next.Holiday))
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	// Unknown country
	resp, _ := tr.getRaw("/api/v1/holidays/ZZ/2024")
	if resp != nil && resp.StatusCode == 404 {
		tr.recordSuccess("Unknown country rejected with 404")
	} else {
		tr.recordError("Unknown country", "Should return 404")
	}

	// Year out of range
	resp2, _ := tr.getRaw("/api/v1/holidays/US/1850")
	if resp2 != nil && resp2.StatusCode == 400 {
		tr.recordSuccess("Year out of range rejected with 400")
	} else {
		tr.recordError("Year range", "Should reject year 1850")
	}

	// Invalid date format
	resp3, _ := tr.getRaw("/api/v1/holidays/check?country=US&date=invalid")
	if resp3 != nil && resp3.StatusCode == 400 {
		tr.recordSuccess("Invalid date format rejected")
	} else {
		tr.recordError("Invalid date", "Should return 400")
	}

	// Impossible date
	resp4, _ := tr.getRaw("/api/v1/holidays/check?country=US&date=2023-02-29")
	if resp4 != nil && resp4.StatusCode == 400 {
		tr.recordSuccess("Impossible date (2023-02-29) rejected")
	} else {
		tr.recordError("Impossible date", "Should reject 2023-02-29")
	}

	// Leap day on a real leap year works
	if _, err := tr.get("/api/v1/holidays/check?country=US&date=2024-02-29"); err != nil {
		tr.recordError("Leap day", err.Error())
	} else {
		tr.recordSuccess("Leap day (2024-02-29) handled")
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) fetchYear(country string, year int, subdivision string) ([]Holiday, error) {
	path := fmt.Sprintf("/api/v1/holidays/%s/%d", country, year)
	if subdivision != "" {
		path += "?subdivision=" + subdivision
	}

	resp, err := tr.get(path)
	if err != nil {
		return nil, err
	}

	var data HolidaysResponse
	if err := tr.parseDataAs(resp, &data); err != nil {
		return nil, err
	}

	if tr.verbose {
		for _, h := range data.Holidays {
			fmt.Printf("    %s  %s\n", h.Date, h.Name)
		}
	}

	return data.Holidays, nil
}

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, tr.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}
	return tr.client.Do(req)
}

func (tr *TestRunner) parseDataAs(resp *APIResponse, target interface{}) error {
	// Re-marshal and unmarshal to convert map to struct
	dataBytes, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	return json.Unmarshal(dataBytes, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", "", "API key (if the server requires one)")
	verbose := flag.Bool("v", false, "Verbose output (list every holiday fetched)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	_, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	runner := NewTestRunner(*baseURL, *apiKey, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
