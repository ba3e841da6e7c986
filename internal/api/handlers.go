package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/holiday-api/internal/calendar"
	"github.com/zapponejosh/holiday-api/internal/config"
	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Querier is the engine surface the handlers need. Satisfied by both
// holiday.Querier and holiday.CachedQuerier.
type Querier interface {
	HolidaysFor(country string, year int, subdivision string) ([]holiday.Holiday, error)
	IsHoliday(country string, date calendar.Date, subdivision string) (*holiday.Holiday, error)
	NextHoliday(country string, after calendar.Date, subdivision string) (*holiday.Holiday, error)
	SupportedCountries() []holiday.CountryInfo
	YearRange() (min, max int)
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	querier Querier
	cfg     *config.Config
	logger  *slog.Logger

	// HealthCheckFn, if set, is consulted by the health endpoint.
	// The API server wires the database ping here when rules are
	// loaded from SQLite.
	HealthCheckFn func(context.Context) error
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(querier Querier, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		querier: querier,
		cfg:     cfg,
		logger:  logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.HealthCheckFn != nil {
		if err := h.HealthCheckFn(ctx); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			WriteError(w, http.StatusServiceUnavailable, "Rule store unhealthy", "HEALTH_CHECK_FAILED")
			return
		}
	}

	minYear, maxYear := h.querier.YearRange()
	WriteSuccess(w, map[string]interface{}{
		"status":    "healthy",
		"countries": len(h.querier.SupportedCountries()),
		"year_min":  minYear,
		"year_max":  maxYear,
	})
}

// ListCountries handles GET /api/v1/countries
func (h *Handlers) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries := h.querier.SupportedCountries()

	WriteSuccess(w, map[string]interface{}{
		"countries": countries,
		"count":     len(countries),
	})
}

// GetHolidays handles GET /api/v1/holidays/{country}/{year}?subdivision=
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	country := strings.ToUpper(chi.URLParam(r, "country"))
	yearStr := chi.URLParam(r, "year")
	subdivision := strings.ToUpper(r.URL.Query().Get("subdivision"))

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr))
		return
	}

	holidays, err := h.querier.HolidaysFor(country, year, subdivision)
	if err != nil {
		h.logQueryError(r, "holidays query failed", err)
		WriteQueryError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"country":     country,
		"year":        year,
		"subdivision": subdivision,
		"holidays":    holidays,
		"count":       len(holidays),
	})
}

// CheckHoliday handles GET /api/v1/holidays/check?country=&date=&subdivision=
func (h *Handlers) CheckHoliday(w http.ResponseWriter, r *http.Request) {
	country := strings.ToUpper(r.URL.Query().Get("country"))
	dateStr := r.URL.Query().Get("date")
	subdivision := strings.ToUpper(r.URL.Query().Get("subdivision"))

	if country == "" || dateStr == "" {
		WriteBadRequest(w, "Both country and date parameters are required")
		return
	}

	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	match, err := h.querier.IsHoliday(country, date, subdivision)
	if err != nil {
		h.logQueryError(r, "holiday check failed", err)
		WriteQueryError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"country":    country,
		"date":       date,
		"is_holiday": match != nil,
		"holiday":    match,
	})
}

// NextHoliday handles GET /api/v1/holidays/next?country=&date=&subdivision=
//
// The date parameter is optional and defaults to today; the match is
// strictly after the given date.
func (h *Handlers) NextHoliday(w http.ResponseWriter, r *http.Request) {
	country := strings.ToUpper(r.URL.Query().Get("country"))
	dateStr := r.URL.Query().Get("date")
	subdivision := strings.ToUpper(r.URL.Query().Get("subdivision"))

	if country == "" {
		WriteBadRequest(w, "Country parameter is required")
		return
	}

	after := calendar.FromTime(time.Now())
	if dateStr != "" {
		var err error
		after, err = calendar.ParseDate(dateStr)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
			return
		}
	}

	next, err := h.querier.NextHoliday(country, after, subdivision)
	if err != nil {
		h.logQueryError(r, "next holiday query failed", err)
		WriteQueryError(w, err)
		return
	}

	if next == nil {
		WriteNotFound(w, fmt.Sprintf("No holiday found after %s within the supported year range", after))
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"country": country,
		"after":   after,
		"holiday": next,
	})
}

// logQueryError logs unexpected engine failures. Expected client errors
// (unknown country, year out of range) stay at debug level.
func (h *Handlers) logQueryError(r *http.Request, msg string, err error) {
	logger := h.logger.With(
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	if holiday.IsClientError(err) {
		logger.Debug(msg)
		return
	}
	logger.Error(msg)
}
