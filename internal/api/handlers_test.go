package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/zapponejosh/holiday-api/internal/config"
	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

// testRegistry builds a small fixture registry so assertions stay stable
// regardless of dataset edits.
func testRegistry() *holiday.Registry {
	return holiday.NewRegistry(&holiday.CountryCalendar{
		Code:       "XX",
		Name:       "Testland",
		Observance: holiday.ObservanceSundayToMonday,
		Rules: []holiday.Rule{
			{
				Name:     "New Year's Day",
				Category: holiday.CategoryPublic,
				Kind:     holiday.KindFixed,
				Month:    time.January,
				Day:      1,
				Observed: true,
			},
			{
				Name:     "Summer Day",
				Category: holiday.CategoryPublic,
				Kind:     holiday.KindFixed,
				Month:    time.July,
				Day:      4,
				Observed: true,
			},
			{
				Name:     "Harvest Day",
				Category: holiday.CategoryPublic,
				Kind:     holiday.KindNthWeekday,
				Month:    time.November,
				Weekday:  time.Thursday,
				Ordinal:  4,
			},
		},
		Subdivisions: map[string][]holiday.Rule{
			"NR": {
				{
					Name:     "Northern Day",
					Category: holiday.CategoryBank,
					Kind:     holiday.KindFixed,
					Month:    time.June,
					Day:      15,
				},
			},
		},
	})
}

// setupTest wires a full router over the fixture registry.
func setupTest(t *testing.T, cfg *config.Config) (http.Handler, *Handlers) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{
			Port:      8080,
			Env:       config.EnvDevelopment,
			LogLevel:  "error",
			LogFormat: "text",
			YearMin:   config.DefaultYearMin,
			YearMax:   config.DefaultYearMax,
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	querier := holiday.NewCachedQuerier(holiday.NewQuerier(testRegistry()))
	handlers := NewHandlers(querier, cfg, logger)
	router := SetupRoutes(handlers, cfg, logger)

	return router, handlers
}

// doRequest runs a GET against the router and returns the recorder.
func doRequest(router http.Handler, path string, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// parseResponse parses JSON response
func parseResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v, body: %s", err, rr.Body.String())
	}
}

// errorCode extracts the error code from a failed response body.
func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp Response
	parseResponse(t, rr, &resp)
	if resp.Success {
		t.Fatalf("expected error response, got success, body: %s", rr.Body.String())
	}
	if resp.Error == nil {
		t.Fatalf("error response missing error info, body: %s", rr.Body.String())
	}
	return resp.Error.Code
}

// =============================================================================
// HEALTH + COUNTRIES
// =============================================================================

func TestHealthCheck(t *testing.T) {
	router, _ := setupTest(t, nil)

	rr := doRequest(router, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Status    string `json:"status"`
			Countries int    `json:"countries"`
			YearMin   int    `json:"year_min"`
			YearMax   int    `json:"year_max"`
		} `json:"data"`
	}
	parseResponse(t, rr, &resp)

	if resp.Data.Status != "healthy" {
		t.Errorf("status = %q, want %q", resp.Data.Status, "healthy")
	}
	if resp.Data.Countries != 1 {
		t.Errorf("countries = %d, want 1", resp.Data.Countries)
	}
}

func TestHealthCheck_StoreUnhealthy(t *testing.T) {
	router, handlers := setupTest(t, nil)

	handlers.HealthCheckFn = func(ctx context.Context) error {
		return errors.New("disk gone")
	}

	rr := doRequest(router, "/health", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestListCountries(t *testing.T) {
	router, _ := setupTest(t, nil)

	rr := doRequest(router, "/api/v1/countries", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Countries []holiday.CountryInfo `json:"countries"`
			Count     int                   `json:"count"`
		} `json:"data"`
	}
	parseResponse(t, rr, &resp)

	if resp.Data.Count != 1 {
		t.Fatalf("count = %d, want 1", resp.Data.Count)
	}
	if resp.Data.Countries[0].Code != "XX" || resp.Data.Countries[0].Name != "Testland" {
		t.Errorf("countries[0] = %+v, want {XX Testland}", resp.Data.Countries[0])
	}
}

// =============================================================================
// HOLIDAYS FOR YEAR
// =============================================================================

func TestGetHolidays(t *testing.T) {
	router, _ := setupTest(t, nil)

	// Lowercase country is accepted
	rr := doRequest(router, "/api/v1/holidays/xx/2024", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Country  string            `json:"country"`
			Year     int               `json:"year"`
			Holidays []holiday.Holiday `json:"holidays"`
			Count    int               `json:"count"`
		} `json:"data"`
	}
	parseResponse(t, rr, &resp)

	if resp.Data.Country != "XX" || resp.Data.Year != 2024 {
		t.Errorf("country/year = %s/%d, want XX/2024", resp.Data.Country, resp.Data.Year)
	}
	if resp.Data.Count != 3 {
		t.Fatalf("count = %d, want 3", resp.Data.Count)
	}
	if got := resp.Data.Holidays[2].Date.String(); got != "2024-11-28" {
		t.Errorf("last holiday = %s, want 2024-11-28", got)
	}
}

func TestGetHolidays_Subdivision(t *testing.T) {
	router, _ := setupTest(t, nil)

	rr := doRequest(router, "/api/v1/holidays/XX/2024?subdivision=nr", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Data struct {
			Subdivision string            `json:"subdivision"`
			Holidays    []holiday.Holiday `json:"holidays"`
			Count       int               `json:"count"`
		} `json:"data"`
	}
	parseResponse(t, rr, &resp)

	if resp.Data.Subdivision != "NR" {
		t.Errorf("subdivision = %q, want %q", resp.Data.Subdivision, "NR")
	}
	if resp.Data.Count != 4 {
		t.Errorf("count = %d, want 4 (base + overlay)", resp.Data.Count)
	}
}

func TestGetHolidays_Errors(t *testing.T) {
	router, _ := setupTest(t, nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"unknown country", "/api/v1/holidays/ZZ/2024", http.StatusNotFound, "UNSUPPORTED_COUNTRY"},
		{"year below range", "/api/v1/holidays/XX/1899", http.StatusBadRequest, "YEAR_OUT_OF_RANGE"},
		{"year above range", "/api/v1/holidays/XX/2201", http.StatusBadRequest, "YEAR_OUT_OF_RANGE"},
		{"non-numeric year", "/api/v1/holidays/XX/next-year", http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(router, tt.path, "")
			if rr.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if code := errorCode(t, rr); code != tt.wantCode {
				t.Errorf("error code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

// =============================================================================
// CHECK + NEXT
// =============================================================================

func TestCheckHoliday(t *testing.T) {
	router, _ := setupTest(t, nil)

	// 2021-07-04 was a Sunday; observed Monday July 5
	rr := doRequest(router, "/api/v1/holidays/check?country=XX&date=2021-07-05", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp struct {
		Data struct {
			IsHoliday bool             `json:"is_holiday"`
			Holiday   *holiday.Holiday `json:"holiday"`
		} `json:"data"`
	}
	parseResponse(t, rr, &resp)

	if !resp.Data.IsHoliday {
		t.Fatal("is_holiday = false, want true")
	}
	if resp.Data.Holiday.Name != "Summer Day" || !resp.Data.Holiday.Observed {
		t.Errorf("holiday = %+v, want observed Summer Day", resp.Data.Holiday)
	}
}

func TestCheckHoliday_Miss(t *testing.T) {
	router, _ := setupTest(t, nil)

	rr := doRequest(router, "/api/v1/holidays/check?country=XX&date=2024-03-03", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Data struct {
			IsHoliday bool             `json:"is_holiday"`
			Holiday   *holiday.Holiday `json:"holiday"`
		} `json:"data"`
	}
	parseResponse(t, rr, &resp)

	if resp.Data.IsHoliday || resp.Data.Holiday != nil {
		t.Errorf("expected miss, got %+v", resp.Data)
	}
}

func TestCheckHoliday_BadInput(t *testing.T) {
	router, _ := setupTest(t, nil)

	tests := []struct {
		name string
		path string
	}{
		{"missing country", "/api/v1/holidays/check?date=2024-01-01"},
		{"missing date", "/api/v1/holidays/check?country=XX"},
		{"malformed date", "/api/v1/holidays/check?country=XX&date=January+1st"},
		{"impossible date", "/api/v1/holidays/check?country=XX&date=2024-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(router, tt.path, "")
			if rr.Code != http.StatusBadRequest {
				t.Errorf("Status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestNextHoliday(t *testing.T) {
	router, _ := setupTest(t, nil)

	rr := doRequest(router, "/api/v1/holidays/next?country=XX&date=2024-12-01", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp struct {
		Data struct {
			Holiday *holiday.Holiday `json:"holiday"`
		} `json:"data"`
	}
	parseResponse(t, rr, &resp)

	// Nothing left in December 2024; next is New Year's Day 2025
	if resp.Data.Holiday == nil {
		t.Fatal("holiday = nil, want New Year's Day")
	}
	if got := resp.Data.Holiday.Date.String(); got != "2025-01-01" {
		t.Errorf("next holiday = %s, want 2025-01-01", got)
	}
}

func TestNextHoliday_UnknownCountry(t *testing.T) {
	router, _ := setupTest(t, nil)

	rr := doRequest(router, "/api/v1/holidays/next?country=ZZ&date=2024-12-01", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

// =============================================================================
// AUTH
// =============================================================================

func TestAuth_ProductionRequiresKey(t *testing.T) {
	cfg := &config.Config{
		Port:      8080,
		Env:       config.EnvProduction,
		APIKey:    "prod-key-123",
		LogLevel:  "error",
		LogFormat: "json",
		YearMin:   config.DefaultYearMin,
		YearMax:   config.DefaultYearMax,
	}
	router, _ := setupTest(t, cfg)

	// Missing key
	rr := doRequest(router, "/api/v1/countries", "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Status without key = %d, want %d", rr.Code, http.StatusUnauthorized)
	}

	// Wrong key
	rr = doRequest(router, "/api/v1/countries", "wrong-key")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Status with wrong key = %d, want %d", rr.Code, http.StatusUnauthorized)
	}

	// Correct key
	rr = doRequest(router, "/api/v1/countries", "prod-key-123")
	if rr.Code != http.StatusOK {
		t.Errorf("Status with valid key = %d, want %d", rr.Code, http.StatusOK)
	}

	// Health stays public
	rr = doRequest(router, "/health", "")
	if rr.Code != http.StatusOK {
		t.Errorf("health status without key = %d, want %d", rr.Code, http.StatusOK)
	}
}
