package catalog

// convert.go handles interpretation of user-provided date strings.
//
// CSV exports and hand-typed form input arrive in a mess of formats:
// US, EU and ISO orderings, 2-digit years, textual months. ParseDate
// accepts all of them and normalizes to a single canonical form so the
// rest of the pipeline only ever sees YYYY-MM-DD.

import (
	"strings"
	"time"
)

// DateLayout is the canonical wire format for release dates.
const DateLayout = "2006-01-02"

// TwoDigitYearPivot defines how 2-digit years are interpreted. Years
// that would land more than this many years in the future are assumed
// to be in the previous century.
var TwoDigitYearPivot = 20

var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// ParseDate interprets a string as a calendar date. The second return
// is false when the value does not parse under any supported layout.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// 4-digit year layouts first, they are unambiguous.
	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	currentYear := time.Now().Year()
	pivotYear := currentYear + TwoDigitYearPivot

	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}

	return time.Time{}, false
}

// NormalizeDate converts a date-like string to canonical YYYY-MM-DD
// form. Values that do not parse come back as "" — the explicit absent
// marker — so a bad cell never aborts ingestion; field validation
// reports it later.
func NormalizeDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return t.Format(DateLayout)
}
