package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISO date output layout; Date is idempotent on its own output.
const isoDate = "2006-01-02"

// dateLayouts are tried in order. Day-first numeric forms come first: the
// source documents use dd/mm/yyyy throughout, which a generic parser would
// treat as ambiguous.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2006/01/02",
	"2006-01-02",
	"02 January 2006",
	"2 January 2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// twoDigitYearRe spots numeric dates with a two-digit year. These are
// rejected rather than guessed.
var twoDigitYearRe = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2}$`)

// Date parses the numeric and textual date forms found in schedules and
// returns the ISO (YYYY-MM-DD) form, or nil when the input is absent,
// ambiguous, or unparsable.
func Date(value string) *string {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", "tba", "n/a", "-":
		return nil
	}
	if twoDigitYearRe.MatchString(value) {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			iso := t.Format(isoDate)
			return &iso
		}
	}

	// Last resort for textual variants not covered by the layout list.
	// ParseStrict refuses ambiguous forms, which keeps the null-over-guess
	// rule intact.
	if t, err := dateparse.ParseStrict(value); err == nil {
		iso := t.Format(isoDate)
		return &iso
	}
	return nil
}
