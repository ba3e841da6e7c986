// Package dataset embeds the default per-country holiday rule definitions.
//
// Each country lives in its own file and contributes one CountryCalendar.
// The definitions are reference data compiled from government gazettes and
// the python-holidays dataset; they are deliberately data-only so that a
// database-backed registry (internal/database) can replace them without
// touching the engine.
package dataset

import (
	"github.com/zapponejosh/holiday-api/internal/holiday"
)

// Default builds the registry of all embedded country calendars.
func Default() *holiday.Registry {
	return holiday.NewRegistry(
		australia(),
		brazil(),
		canada(),
		china(),
		france(),
		germany(),
		ireland(),
		japan(),
		newZealand(),
		southKorea(),
		spain(),
		unitedKingdom(),
		unitedStates(),
	)
}
