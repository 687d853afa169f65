// Package playerid validates user-supplied player identifiers.
package playerid

// Length bounds for a well-formed player identifier
const (
	MinLen = 6
	MaxLen = 20
)

// Valid reports whether s is a well-formed player identifier:
// decimal digits only, between MinLen and MaxLen characters inclusive.
// Identifiers are validated on every use and never cached.
func Valid(s string) bool {
	if len(s) < MinLen || len(s) > MaxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
