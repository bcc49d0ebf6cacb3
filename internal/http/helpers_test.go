package http

import "testing"

func TestFormatRiel(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2500, "2,500"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, tc := range cases {
		if got := formatRiel(tc.in); got != tc.out {
			t.Errorf("formatRiel(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestFormatDollars(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "$0.00"},
		{5.5, "$5.50"},
		{15.5, "$15.50"},
		{1234.56, "$1,234.56"},
		{-2.5, "-$2.50"},
	}
	for _, tc := range cases {
		if got := formatDollars(tc.in); got != tc.out {
			t.Errorf("formatDollars(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"  Sok Sary  ", "Sok Sary"},
		{"name\x00with\x07control", "namewithcontrol"},
		{"ឈ្មោះ", "ឈ្មោះ"},
	}
	for _, tc := range cases {
		if got := sanitizeInput(tc.in); got != tc.out {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestParseGuestID(t *testing.T) {
	if id, err := parseGuestID(" 42 "); err != nil || id != 42 {
		t.Fatalf("parseGuestID(\" 42 \") = %d, %v", id, err)
	}
	if _, err := parseGuestID("seven"); err == nil {
		t.Fatal("parseGuestID(\"seven\") should fail")
	}
}
