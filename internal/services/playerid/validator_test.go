package playerid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"six digits", "123456", true},
		{"twenty digits", "12345678901234567890", true},
		{"typical id", "5219873460", true},
		{"empty", "", false},
		{"too short", "12", false},
		{"five digits", "12345", false},
		{"twenty-one digits", "123456789012345678901", false},
		{"letters", "abc123def", false},
		{"trailing letter", "123456x", false},
		{"spaces", "123 456", false},
		{"negative sign", "-123456", false},
		{"unicode digits", "１２３４５６", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Valid(tc.input))
		})
	}
}

// Valid must agree with the reference pattern ^[0-9]{6,20}$ on arbitrary input
func TestValidMatchesReferencePattern(t *testing.T) {
	re := regexp.MustCompile(`^[0-9]{6,20}$`)

	inputs := []string{
		"", "0", "00000", "000000", "123456", "1234567890",
		"99999999999999999999", "999999999999999999999",
		"12a456", "٠١٢٣٤٥", " 123456", "123456 ", "12.3456",
	}
	for _, in := range inputs {
		assert.Equal(t, re.MatchString(in), Valid(in), "input %q", in)
	}
}
