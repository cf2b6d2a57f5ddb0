package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Amount converts a raw cell value to a 2-decimal amount.
//
// Empty, "nan" and "None" cells are zero. A string containing a comma
// whose fractional part (periods stripped) is at most two characters
// is read in the Turkish convention: periods are thousands separators
// and the comma is the decimal point. Anything else is parsed as a
// plain float.
//
// The second return is false when a non-empty cell could not be
// parsed and fell back to zero. Callers may count these for a
// diagnostic, but the fallback itself is a business rule and must
// never become an error.
func Amount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "nan" || s == "None" {
		return decimal.Zero, true
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(strings.ReplaceAll(parts[1], ".", "")) <= 2 {
			plain := strings.ReplaceAll(s, ".", "")
			plain = strings.Replace(plain, ",", ".", 1)
			f, err := strconv.ParseFloat(plain, 64)
			if err != nil {
				return decimal.Zero, false
			}
			return decimal.NewFromFloat(f).Round(2), true
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f).Round(2), true
}

// dateLayouts are tried in order for non-numeric cells.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"2.1.2006",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
}

// Date converts a raw cell value to a calendar date, discarding any
// time of day. Numeric cells are Excel date serials. Invalid or
// absent input yields the zero time.
func Date(raw string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}
		}
		return Day(t)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t)
		}
	}
	return time.Time{}
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
