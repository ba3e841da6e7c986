package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1RuleSchema,
}

// migrationV1RuleSchema creates the rule storage schema.
//
// Key design decisions:
//
// 1. RULES NOT DATES
//   - holiday_rules stores the recurrence rule, never expanded dates
//   - Dates are computed at query time for whatever year is asked
//
// 2. ONE TABLE FOR BASE AND SUBDIVISION RULES
//   - subdivision = '' marks a country-level rule
//   - subdivision = 'TX', 'SCT', ... marks an overlay rule
//
// 3. TAGGED VARIANTS
//   - kind selects which of the numeric columns are meaningful
//   - fixed: month, day
//   - nth_weekday: month, weekday, ordinal
//   - easter_offset: day_offset
//   - lunar: lunar_month, lunar_day, day_offset
//
// 4. LOCALIZED NAMES AS JSON
//   - names holds a JSON object of locale -> name, mirroring the
//     in-memory Rule.Names map
const migrationV1RuleSchema = `
-- Migration 001: rule storage schema

-- ============================================================================
-- Table: countries
-- ============================================================================
CREATE TABLE IF NOT EXISTS countries (
    code TEXT PRIMARY KEY CHECK (length(code) = 2),
    name TEXT NOT NULL,

    -- Weekend substitution policy, resolved by name at load time
    observance TEXT NOT NULL DEFAULT 'none' CHECK (observance IN (
        'none',
        'us_federal',
        'next_monday',
        'sunday_to_monday'
    )),

    -- Lunisolar calendar system for lunar rules ('' if none)
    lunar_system TEXT NOT NULL DEFAULT '',

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);


-- ============================================================================
-- Table: holiday_rules
-- ============================================================================
CREATE TABLE IF NOT EXISTS holiday_rules (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    country_code TEXT NOT NULL,

    -- '' for country-level rules, subdivision code for overlays
    subdivision TEXT NOT NULL DEFAULT '',

    name TEXT NOT NULL,

    -- JSON object of locale -> localized name, e.g. '{"en":"Christmas Day"}'
    names TEXT NOT NULL DEFAULT '{}',

    category TEXT NOT NULL CHECK (category IN (
        'public',
        'bank',
        'optional'
    )),

    kind TEXT NOT NULL CHECK (kind IN (
        'fixed',
        'nth_weekday',
        'easter_offset',
        'lunar'
    )),

    -- Variant fields; unused columns stay at their zero default
    month INTEGER NOT NULL DEFAULT 0,
    day INTEGER NOT NULL DEFAULT 0,
    weekday INTEGER NOT NULL DEFAULT 0,
    ordinal INTEGER NOT NULL DEFAULT 0,
    day_offset INTEGER NOT NULL DEFAULT 0,
    lunar_month INTEGER NOT NULL DEFAULT 0,
    lunar_day INTEGER NOT NULL DEFAULT 0,

    -- Validity window; 0 means unbounded on that side
    start_year INTEGER NOT NULL DEFAULT 0,
    end_year INTEGER NOT NULL DEFAULT 0,

    -- Whether the country's observance policy applies to this rule
    observed INTEGER NOT NULL DEFAULT 0,

    -- Subdivision rules only: replace the base rule of the same name
    overrides_base INTEGER NOT NULL DEFAULT 0,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    FOREIGN KEY (country_code) REFERENCES countries(code) ON DELETE CASCADE,

    -- A rule is identified by country + subdivision + name
    UNIQUE (country_code, subdivision, name)
);

-- Primary lookup: all rules for a country, base and overlays together
CREATE INDEX IF NOT EXISTS idx_holiday_rules_country
    ON holiday_rules(country_code, subdivision);
`
