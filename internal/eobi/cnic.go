package eobi

import "strings"

// CleanCNIC strips everything but digits, so 12345-1234567-1 and
// "12345 1234567 1" normalize to the same 13-digit form.
func CleanCNIC(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCNIC reports whether the cleaned value is the 13-digit format the
// government portal accepts.
func ValidCNIC(raw string) bool {
	return len(CleanCNIC(raw)) == 13
}
