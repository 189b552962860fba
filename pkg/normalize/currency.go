// Package normalize provides total value-conversion functions for the leaf
// values found in policy schedules: currency strings, dates, boolean tokens,
// and free-text addresses. Every function returns a value or nil; none of
// them raises an error past its boundary.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencySymbolRe = regexp.MustCompile(`[R$€£¥\s\x{00a0}]`)
	percentSignRe    = regexp.MustCompile(`%`)
)

// emptyTokens are values that mean "no amount" rather than zero.
var emptyTokens = map[string]struct{}{
	"-": {}, "r-": {}, "r -": {}, "": {}, "n/a": {}, "tba": {},
}

// Currency parses a currency string to a float. Handles "R 1 943.22",
// "R1,943.22", "1943.22" and parenthesized negatives "(500.00)". Dash and
// TBA/N/A markers, and anything unparsable, yield nil.
func Currency(value string) *float64 {
	value = strings.TrimSpace(value)
	if _, empty := emptyTokens[strings.ToLower(value)]; empty {
		return nil
	}

	negative := strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")")
	if negative {
		value = value[1 : len(value)-1]
	}

	value = currencySymbolRe.ReplaceAllString(value, "")
	value = strings.ReplaceAll(value, ",", "")
	value = percentSignRe.ReplaceAllString(value, "")

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	if negative {
		f = -f
	}
	return &f
}

// Percentage parses a percentage token like "7.5%" or "10 %". Returns the
// numeric rate, or nil when no percentage is present.
func Percentage(value string) *float64 {
	m := percentRe.FindStringSubmatch(value)
	if m == nil {
		return nil
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &f
}

var percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
