package importer

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
)

// XLSReader reads legacy BIFF .xls workbooks.
type XLSReader struct{}

// maxXLSRows bounds how many rows are pulled from a legacy workbook.
const maxXLSRows = 65536

// Extensions returns the extensions handled by this reader.
func (x *XLSReader) Extensions() []string { return []string{".xls"} }

// Cells returns the raw cell grid of the first sheet.
func (x *XLSReader) Cells(r io.ReadSeeker) ([][]string, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	return wb.ReadAllCells(maxXLSRows), nil
}
