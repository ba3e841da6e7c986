package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// dbtx is satisfied by both *DB and *Tx so writes can run inside or
// outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns the zero time if parsing fails.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}

	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}

	return time.Time{}
}

// =============================================================================
// Country Queries
// =============================================================================

// UpsertCountry inserts or updates a country.
//
// This is IDEMPOTENT - safe to run multiple times with same data.
// Used by the importer to load rule data into the database.
func (db *DB) UpsertCountry(ctx context.Context, country *CountryRow) error {
	return upsertCountry(ctx, db, country)
}

// UpsertCountry inserts or updates a country within the transaction.
func (tx *Tx) UpsertCountry(ctx context.Context, country *CountryRow) error {
	return upsertCountry(ctx, tx, country)
}

func upsertCountry(ctx context.Context, q dbtx, country *CountryRow) error {
	query := `
		INSERT INTO countries (code, name, observance, lunar_system, updated_at)
		VALUES (?, ?, ?, ?, datetime('now'))
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			observance = excluded.observance,
			lunar_system = excluded.lunar_system,
			updated_at = datetime('now')
	`

	_, err := q.ExecContext(ctx, query,
		country.Code,
		country.Name,
		country.Observance,
		country.LunarSystem,
	)
	if err != nil {
		return fmt.Errorf("upsert country %s: %w", country.Code, mapConstraintError(err))
	}

	return nil
}

// GetCountry retrieves a country by its ISO code.
// Returns ErrNotFound if the code doesn't exist.
func (db *DB) GetCountry(ctx context.Context, code string) (*CountryRow, error) {
	query := `
		SELECT code, name, observance, lunar_system, created_at, updated_at
		FROM countries
		WHERE code = ?
	`

	var country CountryRow
	var createdAt, updatedAt sql.NullString

	err := db.QueryRowContext(ctx, query, code).Scan(
		&country.Code,
		&country.Name,
		&country.Observance,
		&country.LunarSystem,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query country %s: %w", code, err)
	}

	country.CreatedAt = parseTimestamp(createdAt)
	country.UpdatedAt = parseTimestamp(updatedAt)

	return &country, nil
}

// ListCountries retrieves all countries ordered by code.
func (db *DB) ListCountries(ctx context.Context) ([]CountryRow, error) {
	query := `
		SELECT code, name, observance, lunar_system, created_at, updated_at
		FROM countries
		ORDER BY code ASC
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	var countries []CountryRow

	for rows.Next() {
		var country CountryRow
		var createdAt, updatedAt sql.NullString

		err := rows.Scan(
			&country.Code,
			&country.Name,
			&country.Observance,
			&country.LunarSystem,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan country row: %w", err)
		}

		country.CreatedAt = parseTimestamp(createdAt)
		country.UpdatedAt = parseTimestamp(updatedAt)

		countries = append(countries, country)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate country rows: %w", err)
	}

	return countries, nil
}

// DeleteCountry removes a country and (via cascade) all its rules.
// Returns ErrNotFound if the code doesn't exist.
//
// Mainly for testing and re-imports.
func (db *DB) DeleteCountry(ctx context.Context, code string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM countries WHERE code = ?`, code)
	if err != nil {
		return fmt.Errorf("delete country %s: %w", code, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// =============================================================================
// Rule Queries
// =============================================================================

const ruleColumns = `
	id, country_code, subdivision, name, names, category, kind,
	month, day, weekday, ordinal, day_offset, lunar_month, lunar_day,
	start_year, end_year, observed, overrides_base,
	created_at, updated_at
`

// InsertRule inserts a holiday rule and sets its ID.
// Returns ErrDuplicate if a rule with the same country, subdivision and
// name already exists.
func (db *DB) InsertRule(ctx context.Context, rule *RuleRow) error {
	return insertRule(ctx, db, rule)
}

// InsertRule inserts a holiday rule within the transaction.
func (tx *Tx) InsertRule(ctx context.Context, rule *RuleRow) error {
	return insertRule(ctx, tx, rule)
}

func insertRule(ctx context.Context, q dbtx, rule *RuleRow) error {
	query := `
		INSERT INTO holiday_rules (
			country_code, subdivision, name, names, category, kind,
			month, day, weekday, ordinal, day_offset, lunar_month, lunar_day,
			start_year, end_year, observed, overrides_base
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		rule.CountryCode,
		rule.Subdivision,
		rule.Name,
		rule.Names,
		rule.Category,
		rule.Kind,
		rule.Month,
		rule.Day,
		rule.Weekday,
		rule.Ordinal,
		rule.DayOffset,
		rule.LunarMonth,
		rule.LunarDay,
		rule.StartYear,
		rule.EndYear,
		rule.Observed,
		rule.OverridesBase,
	)
	if err != nil {
		return fmt.Errorf("insert rule %q: %w", rule.Name, mapConstraintError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("rule insert id: %w", err)
	}
	rule.ID = id

	return nil
}

// ListRules retrieves all rules for a country, base rules first, then
// subdivision overlays, preserving insertion order within each group.
func (db *DB) ListRules(ctx context.Context, countryCode string) ([]RuleRow, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM holiday_rules
		WHERE country_code = ?
		ORDER BY subdivision ASC, id ASC
	`

	rows, err := db.QueryContext(ctx, query, countryCode)
	if err != nil {
		return nil, fmt.Errorf("query rules for %s: %w", countryCode, err)
	}
	defer rows.Close()

	var rules []RuleRow

	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rule rows: %w", err)
	}

	return rules, nil
}

func scanRule(rows *sql.Rows) (*RuleRow, error) {
	var rule RuleRow
	var createdAt, updatedAt sql.NullString

	err := rows.Scan(
		&rule.ID,
		&rule.CountryCode,
		&rule.Subdivision,
		&rule.Name,
		&rule.Names,
		&rule.Category,
		&rule.Kind,
		&rule.Month,
		&rule.Day,
		&rule.Weekday,
		&rule.Ordinal,
		&rule.DayOffset,
		&rule.LunarMonth,
		&rule.LunarDay,
		&rule.StartYear,
		&rule.EndYear,
		&rule.Observed,
		&rule.OverridesBase,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan rule row: %w", err)
	}

	rule.CreatedAt = parseTimestamp(createdAt)
	rule.UpdatedAt = parseTimestamp(updatedAt)

	return &rule, nil
}

// =============================================================================
// Stats
// =============================================================================

// StoreStats summarizes the stored rule data.
//
// Useful for:
// - Health check endpoint
// - Verifying import coverage
type StoreStats struct {
	Countries int `json:"countries"`
	Rules     int `json:"rules"`
}

// GetStoreStats returns counts over the stored countries and rules.
func (db *DB) GetStoreStats(ctx context.Context) (*StoreStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM countries) AS countries,
			(SELECT COUNT(*) FROM holiday_rules) AS rules
	`

	var stats StoreStats
	if err := db.QueryRowContext(ctx, query).Scan(&stats.Countries, &stats.Rules); err != nil {
		return nil, fmt.Errorf("query store stats: %w", err)
	}

	return &stats, nil
}

// =============================================================================
// Registry Loading
// =============================================================================

// LoadRegistry assembles a holiday.Registry from the stored rule data.
//
// This is the bridge between storage and the evaluation engine: the API
// server calls it once at startup when configured with a database path.
func (db *DB) LoadRegistry(ctx context.Context) (*holiday.Registry, error) {
	countries, err := db.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	calendars := make([]*holiday.CountryCalendar, 0, len(countries))
	for i := range countries {
		country := &countries[i]

		rules, err := db.ListRules(ctx, country.Code)
		if err != nil {
			return nil, fmt.Errorf("load registry: %w", err)
		}

		cal, err := country.ToCalendar(rules)
		if err != nil {
			return nil, fmt.Errorf("load registry: %w", err)
		}

		calendars = append(calendars, cal)
	}

	db.logger.Info("registry loaded from database",
		slog.Int("countries", len(calendars)),
	)

	return holiday.NewRegistry(calendars...), nil
}

// SaveCalendar persists a CountryCalendar, replacing any rules already
// stored for that country. Runs in a single transaction.
func (db *DB) SaveCalendar(ctx context.Context, cal *holiday.CountryCalendar, observance string) error {
	return db.WithTx(ctx, func(tx *Tx) error {
		country := &CountryRow{
			Code:        cal.Code,
			Name:        cal.Name,
			Observance:  observance,
			LunarSystem: string(cal.LunarSystem),
		}
		if err := tx.UpsertCountry(ctx, country); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM holiday_rules WHERE country_code = ?`, cal.Code,
		); err != nil {
			return fmt.Errorf("clear rules for %s: %w", cal.Code, err)
		}

		insert := func(subdivision string, rules []holiday.Rule) error {
			for _, rule := range rules {
				row, err := NewRuleRow(cal.Code, subdivision, rule)
				if err != nil {
					return err
				}
				if err := tx.InsertRule(ctx, row); err != nil {
					return err
				}
			}
			return nil
		}

		if err := insert("", cal.Rules); err != nil {
			return err
		}
		for subdivision, rules := range cal.Subdivisions {
			if err := insert(subdivision, rules); err != nil {
				return err
			}
		}

		return nil
	})
}
