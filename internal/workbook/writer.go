// Package workbook composes reconciled statements into .xlsx
// artifacts with a formula-driven running balance.
package workbook

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ekstre-dev/ekstre/internal/model"
)

// columns is the fixed output layout, left to right.
var columns = []string{
	model.ColInvoiceDate,
	model.ColInvoiceDue,
	model.ColInvoiceNo,
	model.ColTransactionType,
	model.ColTransactionDate,
	model.ColAmountPlus,
	model.ColAmountMinus,
	model.ColBalance,
}

var columnWidths = map[string]float64{
	model.ColInvoiceDate:     13,
	model.ColInvoiceDue:      13,
	model.ColInvoiceNo:       17,
	model.ColTransactionType: 10,
	model.ColTransactionDate: 13,
	model.ColAmountPlus:      15,
	model.ColAmountMinus:     15,
	model.ColBalance:         12,
}

const (
	headerRow = 5 // 1-based sheet row holding the column labels
	dataRow   = 6 // first data row

	numberFormat = "#,##0.00"
	dateFormat   = "dd.mm.yyyy"
)

// SingleSheetName is the sheet name for non-merged artifacts.
const SingleSheetName = "Sayfa1"

// styles are the per-workbook cell styles.
type styles struct {
	header int
	date   int
	number int
	center int
}

func newStyles(f *excelize.File) (styles, error) {
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: center,
	})
	if err != nil {
		return styles{}, fmt.Errorf("creating header style: %w", err)
	}

	dateFmt := dateFormat
	date, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt, Alignment: center})
	if err != nil {
		return styles{}, fmt.Errorf("creating date style: %w", err)
	}

	numFmt := numberFormat
	number, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt, Alignment: center})
	if err != nil {
		return styles{}, fmt.Errorf("creating number style: %w", err)
	}

	plain, err := f.NewStyle(&excelize.Style{Alignment: center})
	if err != nil {
		return styles{}, fmt.Errorf("creating center style: %w", err)
	}

	return styles{header: header, date: date, number: number, center: plain}, nil
}

// Write composes one workbook at path. With merge, every result gets
// its own sheet named after its company; otherwise the first result
// is written to a single sheet. The artifact is written by one caller
// at a time; sheets are appended sequentially.
func Write(path string, results []model.Result, merge bool) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if merge {
		names := sheetNames(results)
		for i, res := range results {
			if err := addSheet(f, st, res, names[i], i == 0); err != nil {
				return err
			}
		}
	} else {
		if err := addSheet(f, st, results[0], SingleSheetName, true); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}

// addSheet lays one statement onto a sheet: metadata in rows 1-2,
// bold headers in row 5, data from row 6, and the running-balance
// formula chain below the first data row.
func addSheet(f *excelize.File, st styles, res model.Result, name string, first bool) error {
	if first {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("naming sheet %q: %w", name, err)
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("adding sheet %q: %w", name, err)
		}
	}

	for i, col := range columns {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := columnWidths[col]
		if width == 0 {
			width = 12
		}
		if err := f.SetColWidth(name, colName, colName, width); err != nil {
			return fmt.Errorf("setting width of column %s: %w", colName, err)
		}
	}

	if err := f.SetCellValue(name, "A1", res.CompanyName); err != nil {
		return err
	}
	if err := f.SetCellValue(name, "A2", res.DebtorName); err != nil {
		return err
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, col); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, cell, cell, st.header); err != nil {
			return err
		}
	}

	for ri, e := range res.Entries {
		if err := writeEntry(f, st, name, dataRow+ri, e); err != nil {
			return fmt.Errorf("writing row %d: %w", dataRow+ri, err)
		}
	}

	return writeBalanceFormulas(f, st, name, len(res.Entries))
}

func writeEntry(f *excelize.File, st styles, sheet string, row int, e model.Entry) error {
	for ci, col := range columns {
		cell, err := excelize.CoordinatesToCellName(ci+1, row)
		if err != nil {
			return err
		}

		style := st.center
		switch col {
		case model.ColInvoiceDate:
			style = st.date
			if err := setDateCell(f, sheet, cell, e.InvoiceDate); err != nil {
				return err
			}
		case model.ColInvoiceDue:
			style = st.date
			if err := setDateCell(f, sheet, cell, e.InvoiceDueDate); err != nil {
				return err
			}
		case model.ColTransactionDate:
			style = st.date
			if err := setDateCell(f, sheet, cell, e.TransactionDate); err != nil {
				return err
			}
		case model.ColInvoiceNo:
			if err := f.SetCellValue(sheet, cell, e.InvoiceNumber); err != nil {
				return err
			}
		case model.ColTransactionType:
			if err := f.SetCellValue(sheet, cell, e.TransactionType); err != nil {
				return err
			}
		case model.ColAmountPlus:
			style = st.number
			// Zero renders as blank for legibility.
			if !e.Amount.IsZero() {
				if err := f.SetCellValue(sheet, cell, e.Amount.InexactFloat64()); err != nil {
					return err
				}
			}
		case model.ColAmountMinus:
			style = st.number
			if !e.Dispute.IsZero() {
				if err := f.SetCellValue(sheet, cell, e.Dispute.InexactFloat64()); err != nil {
					return err
				}
			}
		case model.ColBalance:
			style = st.number
			// Only the first data row carries a static balance; later
			// rows re-derive it by formula.
			if row == dataRow {
				if err := f.SetCellValue(sheet, cell, e.Balance.InexactFloat64()); err != nil {
					return err
				}
			}
		}

		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// setDateCell writes a date at UTC noon so renderers in any timezone
// show the same calendar day. Zero dates stay blank.
func setDateCell(f *excelize.File, sheet, cell string, t time.Time) error {
	if t.IsZero() {
		return nil
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	return f.SetCellValue(sheet, cell, noon)
}

// writeBalanceFormulas chains each balance cell to the previous one:
// previous balance plus this row's (+) and (-) amounts. The chain
// starts at the second data row and has length rows-1.
func writeBalanceFormulas(f *excelize.File, st styles, sheet string, rows int) error {
	balCol, err := excelize.ColumnNumberToName(indexOf(model.ColBalance) + 1)
	if err != nil {
		return err
	}
	plusCol, err := excelize.ColumnNumberToName(indexOf(model.ColAmountPlus) + 1)
	if err != nil {
		return err
	}
	minusCol, err := excelize.ColumnNumberToName(indexOf(model.ColAmountMinus) + 1)
	if err != nil {
		return err
	}

	for r := dataRow + 1; r < dataRow+rows; r++ {
		cell := fmt.Sprintf("%s%d", balCol, r)
		formula := fmt.Sprintf("%s%d+%s%d+%s%d", balCol, r-1, plusCol, r, minusCol, r)
		if err := f.SetCellFormula(sheet, cell, formula); err != nil {
			return fmt.Errorf("setting balance formula at %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, st.number); err != nil {
			return err
		}
	}
	return nil
}

func indexOf(col string) int {
	for i, c := range columns {
		if c == col {
			return i
		}
	}
	return -1
}
