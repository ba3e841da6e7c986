// Command import loads holiday rule data into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -countries data/countries.csv -rules data/rules.csv -db data/holidays.db
//	go run ./cmd/import -seed -db data/holidays.db
//
// This tool:
// 1. Creates/opens the SQLite database
// 2. Runs migrations to ensure schema is current
// 3. Parses the countries and rules CSV files (or, with -seed, uses the
//    compiled-in dataset)
// 4. Imports everything in a single transaction
//
// Imports replace: rules already stored for an imported country are
// cleared before its new rules are written.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zapponejosh/holiday-api/internal/database"
	"github.com/zapponejosh/holiday-api/internal/dataset"
	"github.com/zapponejosh/holiday-api/internal/holiday"
)

func main() {
	// Parse command line flags
	countriesPath := flag.String("countries", "data/countries.csv", "Path to countries CSV file")
	rulesPath := flag.String("rules", "data/rules.csv", "Path to rules CSV file")
	dbPath := flag.String("db", "data/holidays.db", "Path to SQLite database")
	seed := flag.Bool("seed", false, "Import the compiled-in dataset instead of CSV files")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	var err error
	if *seed {
		err = runSeed(*dbPath, logger)
	} else {
		err = runCSV(*countriesPath, *rulesPath, *dbPath, logger)
	}
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

// runSeed writes every country of the compiled-in dataset to SQLite.
func runSeed(dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	db, err := openAndMigrate(ctx, dbPath, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	registry := dataset.Default()
	for _, code := range registry.Codes() {
		cal, _ := registry.Lookup(code)
		if err := db.SaveCalendar(ctx, cal, holiday.PolicyName(cal.Observance)); err != nil {
			return fmt.Errorf("save %s: %w", code, err)
		}
		logger.Debug("country saved", slog.String("code", code))
	}

	return printSummary(ctx, db, startTime)
}

// runCSV imports countries and rules from the CSV ingestion format.
func runCSV(countriesPath, rulesPath, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read and parse CSV files
	// =========================================================================
	logger.Info("reading countries file", slog.String("path", countriesPath))
	countries, err := parseCountries(countriesPath)
	if err != nil {
		return fmt.Errorf("parse countries: %w", err)
	}

	logger.Info("reading rules file", slog.String("path", rulesPath))
	rules, err := parseRules(rulesPath)
	if err != nil {
		return fmt.Errorf("parse rules: %w", err)
	}

	logger.Info("parsed CSV",
		slog.Int("countries", len(countries)),
		slog.Int("rules", len(rules)),
	)

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	db, err := openAndMigrate(ctx, dbPath, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	// =========================================================================
	// Step 3: Import in a transaction
	// =========================================================================
	logger.Info("starting import")

	err = db.WithTx(ctx, func(tx *database.Tx) error {
		for i := range countries {
			if err := tx.UpsertCountry(ctx, &countries[i]); err != nil {
				return err
			}
			// Replace semantics: drop whatever was stored before
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM holiday_rules WHERE country_code = ?`, countries[i].Code,
			); err != nil {
				return fmt.Errorf("clear rules for %s: %w", countries[i].Code, err)
			}
		}

		for i := range rules {
			if err := tx.InsertRule(ctx, &rules[i]); err != nil {
				return err
			}
			if (i+1)%100 == 0 {
				logger.Debug("import progress",
					slog.Int("rule", i+1),
					slog.Int("total", len(rules)),
				)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	// =========================================================================
	// Step 4: Verify by loading the registry back
	// =========================================================================
	if _, err := db.LoadRegistry(ctx); err != nil {
		return fmt.Errorf("verify import: %w", err)
	}

	return printSummary(ctx, db, startTime)
}

func openAndMigrate(ctx context.Context, dbPath string, logger *slog.Logger) (*database.DB, error) {
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	migrated, err := db.Migrate(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	return db, nil
}

func printSummary(ctx context.Context, db *database.DB, startTime time.Time) error {
	stats, err := db.GetStoreStats(ctx)
	if err != nil {
		return fmt.Errorf("store stats: %w", err)
	}

	elapsed := time.Since(startTime)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Countries stored:  %d\n", stats.Countries)
	fmt.Printf("Rules stored:      %d\n", stats.Rules)
	fmt.Printf("Time elapsed:      %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// parseCountries reads the countries CSV:
//
//	code,name,observance,lunar_system
func parseCountries(path string) ([]database.CountryRow, error) {
	records, err := readCSV(path, 4)
	if err != nil {
		return nil, err
	}

	var countries []database.CountryRow
	for i, rec := range records {
		code := strings.ToUpper(strings.TrimSpace(rec[0]))
		if code == "CODE" {
			continue // header row
		}
		if len(code) != 2 {
			return nil, fmt.Errorf("row %d: country code %q is not two letters", i+1, rec[0])
		}

		observance := strings.TrimSpace(rec[2])
		if observance == "" {
			observance = "none"
		}
		if _, ok := holiday.PolicyByName(observance); !ok {
			return nil, fmt.Errorf("row %d: unknown observance policy %q", i+1, observance)
		}

		countries = append(countries, database.CountryRow{
			Code:        code,
			Name:        strings.TrimSpace(rec[1]),
			Observance:  observance,
			LunarSystem: strings.TrimSpace(rec[3]),
		})
	}

	return countries, nil
}

// Rules CSV column order. An optional 16th column carries overrides_base
// for subdivision rules.
//
//	country,subdivision,name,category,kind,month,day,weekday,ordinal,
//	offset,lunar_month,lunar_day,start_year,end_year,observed
func parseRules(path string) ([]database.RuleRow, error) {
	records, err := readCSV(path, 15)
	if err != nil {
		return nil, err
	}

	var rules []database.RuleRow
	for i, rec := range records {
		country := strings.ToUpper(strings.TrimSpace(rec[0]))
		if country == "COUNTRY" {
			continue // header row
		}

		row := database.RuleRow{
			CountryCode: country,
			Subdivision: strings.ToUpper(strings.TrimSpace(rec[1])),
			Name:        strings.TrimSpace(rec[2]),
			Names:       "{}",
			Category:    strings.TrimSpace(rec[3]),
			Kind:        strings.TrimSpace(rec[4]),
			Observed:    parseBool(rec[14]),
		}
		if len(rec) > 15 {
			row.OverridesBase = parseBool(rec[15])
		}

		numeric := []struct {
			field *int
			value string
			label string
		}{
			{&row.Month, rec[5], "month"},
			{&row.Day, rec[6], "day"},
			{&row.Weekday, rec[7], "weekday"},
			{&row.Ordinal, rec[8], "ordinal"},
			{&row.DayOffset, rec[9], "offset"},
			{&row.LunarMonth, rec[10], "lunar_month"},
			{&row.LunarDay, rec[11], "lunar_day"},
			{&row.StartYear, rec[12], "start_year"},
			{&row.EndYear, rec[13], "end_year"},
		}
		for _, n := range numeric {
			v, err := parseInt(n.value)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s): bad %s %q", i+1, row.Name, n.label, n.value)
			}
			*n.field = v
		}

		// Catch malformed rows before they hit the CHECK constraints
		if _, err := row.ToRule(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		rules = append(rules, row)
	}

	return rules, nil
}

// readCSV reads all records and enforces a minimum field count.
func readCSV(path string, minFields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // validated per row below
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < minFields {
			return nil, fmt.Errorf("record %d has %d fields, want at least %d", len(records)+1, len(rec), minFields)
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseInt treats an empty field as unset (zero).
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
