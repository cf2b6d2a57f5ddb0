package workbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ekstre-dev/ekstre/internal/model"
)

// MergedOutputName is the default artifact name in merge mode.
const MergedOutputName = "Birlestirilmis_Ekstreler.xlsx"

// maxSheetBase caps the company-name part of a sheet name; Excel
// limits full names to 31 characters and suffixes need room.
const maxSheetBase = 25

// invalidSheetChars cannot appear in Excel sheet names.
const invalidSheetChars = `[]:*?/\`

// OutputName derives the per-file artifact name from an input path:
// "statement.xls" becomes "statement_Ekstre.xlsx".
func OutputName(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_Ekstre.xlsx"
}

// sheetNames assigns a sheet name per result in merge mode: the
// company name truncated to 25 runes, de-duplicated with a numeric
// suffix starting at _2.
func sheetNames(results []model.Result) []string {
	counts := make(map[string]int)
	names := make([]string, len(results))
	for i, res := range results {
		base := sheetBase(res.CompanyName)
		counts[base]++
		if counts[base] > 1 {
			names[i] = fmt.Sprintf("%s_%d", base, counts[base])
		} else {
			names[i] = base
		}
	}
	return names
}

func sheetBase(company string) string {
	name := strings.TrimSpace(company)
	if name == "" {
		name = "Bilinmeyen"
	}
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetChars, r) {
			return '_'
		}
		return r
	}, name)
	runes := []rune(name)
	if len(runes) > maxSheetBase {
		runes = runes[:maxSheetBase]
	}
	return string(runes)
}
