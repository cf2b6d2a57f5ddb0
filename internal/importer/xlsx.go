package importer

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads modern .xlsx workbooks.
type XLSXReader struct{}

// Extensions returns the extensions handled by this reader.
func (x *XLSXReader) Extensions() []string { return []string{".xlsx"} }

// Cells returns the raw cell grid of the first sheet. Raw values keep
// date cells as their serial numbers and numeric cells unformatted,
// which is what the normalizer expects.
func (x *XLSXReader) Cells(r io.ReadSeeker) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	return rows, nil
}
