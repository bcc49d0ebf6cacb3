// Package core provides the guest domain model and numeral handling.
//
// This file converts user-entered numeral text, which may mix Khmer digits
// (១២៣) with Western digits, thousands separators and stray spaces, into
// canonical ASCII numerals and parses it into the two contribution types.
package core

import (
	"strconv"
	"strings"
)

// numeralReplacer holds the fixed character mapping: Khmer digits ០-៩ to
// ASCII 0-9, commas and spaces dropped. Everything else passes through
// untouched, including decimal points and minus signs.
var numeralReplacer = strings.NewReplacer(
	"០", "0", "១", "1", "២", "2", "៣", "3", "៤", "4",
	"៥", "5", "៦", "6", "៧", "7", "៨", "8", "៩", "9",
	",", "", " ", "",
)

// NormalizeNumerals rewrites s with ASCII digits and no separators. It never
// fails and performs no numeric validation; empty input yields empty output.
// Applying it twice yields the same text, since no mapped character survives
// the first pass.
func NormalizeNumerals(s string) string {
	return numeralReplacer.Replace(s)
}

// ParseRiel coerces normalized text to a whole-riel amount. Empty text is the
// zero amount, not an error. Unparseable text fails with ErrInvalidAmount.
func ParseRiel(s string) (int64, error) {
	clean := strings.TrimSpace(NormalizeNumerals(s))
	if clean == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseDollars coerces normalized text to a dollar amount, keeping the
// decimal point intact. Empty text is the zero amount.
func ParseDollars(s string) (float64, error) {
	clean := strings.TrimSpace(NormalizeNumerals(s))
	if clean == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
