package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.234,56", "1234.56"},
		{"88,49", "88.49"},
		{"1.234.567,8", "1234567.8"},
		{"-250,00", "-250"},
		{"1234.56", "1234.56"},
		{"500", "500"},
		{"-42", "-42"},
		{"3.14159", "3.14"},
		{"", "0"},
		{"   ", "0"},
		{"nan", "0"},
		{"None", "0"},
	}
	for _, tt := range tests {
		got, ok := Amount(tt.input)
		assert.True(t, ok, "input %q should not be a fallback", tt.input)
		assert.Equal(t, tt.want, got.String(), "input %q", tt.input)
	}
}

func TestAmount_FallbackToZero(t *testing.T) {
	// Stray text cells fall back to zero silently; the flag lets the
	// caller count them.
	for _, input := range []string{"abc", "12,34,56", "x,1"} {
		got, ok := Amount(input)
		assert.False(t, ok, "input %q should report fallback", input)
		assert.True(t, got.IsZero(), "input %q should normalize to zero", input)
	}
}

func TestAmount_Rounding(t *testing.T) {
	got, ok := Amount("12,345")
	// Fractional part has three characters, so this is not the locale
	// convention and falls through to a plain float parse.
	assert.False(t, ok)
	assert.True(t, got.IsZero())

	got, ok = Amount("99.999")
	assert.True(t, ok)
	assert.Equal(t, "100", got.String())
}

func TestDate_Serial(t *testing.T) {
	// 45292 is 2024-01-01 in the 1900 date system.
	got := Date("45292")
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)

	// Fractional serials carry a time of day, which is discarded.
	got = Date("45292.75")
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDate_Layouts(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"2024-03-15", "15.03.2024", "15/03/2024", "15-03-2024"} {
		assert.Equal(t, want, Date(input), "input %q", input)
	}
}

func TestDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "  ", "not a date"} {
		assert.True(t, Date(input).IsZero(), "input %q", input)
	}
}

func TestDay(t *testing.T) {
	in := time.Date(2024, 5, 7, 18, 30, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), Day(in))
}
