package http

import (
	"fmt"
	"strconv"
	"strings"
)

// formatRiel renders a whole-riel amount with thousands separators, e.g.
// "10,000". Formatting lives here; the core returns raw numbers.
func formatRiel(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// formatDollars renders a dollar amount with two decimals and thousands
// separators, e.g. "$1,234.50".
func formatDollars(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(v*100 + 0.5)
	whole := formatRiel(cents / 100)
	s := fmt.Sprintf("$%s.%02d", whole, cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseGuestID parses the id form field.
func parseGuestID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
