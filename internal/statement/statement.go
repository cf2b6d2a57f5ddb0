// Package statement implements the reconciliation pipeline that turns
// raw factoring statement rows into accounting-consistent ledger
// entries: amount/date normalization, subtotal confirmation, signed
// amount splitting, same-day collection aggregation and, for
// date-windowed statements, carry-forward resolution.
package statement

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ekstre-dev/ekstre/internal/model"
	"github.com/ekstre-dev/ekstre/internal/normalize"
)

// Mode selects how a statement is processed.
type Mode string

const (
	// ModeGeneral processes the full statement as-is.
	ModeGeneral Mode = "genel"
	// ModeDated folds everything before a cutoff date into a single
	// carry-forward opening row.
	ModeDated Mode = "tarihli"
)

// ErrCutoffRequired is returned when dated mode is requested without
// a cutoff date.
var ErrCutoffRequired = errors.New("Tarihli ekstre için başlangıç tarihi belirtilmelidir.")

// Process runs the full pipeline over one statement's raw rows and
// returns the reconciled entries plus extracted metadata and
// warnings. Warnings are informational; the returned error is only
// non-nil for configuration problems, never for data quality.
func Process(rows []model.RawRow, mode Mode, cutoff time.Time) (model.Result, error) {
	switch mode {
	case ModeGeneral:
	case ModeDated:
		if cutoff.IsZero() {
			return model.Result{}, ErrCutoffRequired
		}
	default:
		return model.Result{}, fmt.Errorf("bilinmeyen işlem modu: %q", mode)
	}

	res := model.Result{}
	res.CompanyName, res.DebtorName = extractMetadata(rows)

	rows, confirmNote := Confirm(rows)
	if w := UnmatchedWarning(rows); w != "" {
		res.Warnings = append(res.Warnings, w)
	}
	if confirmNote != "" && confirmNote != ConfirmationOK {
		res.Warnings = append(res.Warnings, confirmNote)
	}

	prepared := make([]model.RawRow, len(rows))
	for i, r := range rows {
		prepared[i] = PrepareRow(r)
	}

	entries, fallbacks := toEntries(prepared)

	if mode == ModeDated {
		entries = carryForward(entries, cutoff)
	}
	entries = SplitAmounts(entries)

	entries, aggWarnings := AggregateCollections(entries)
	res.Warnings = append(res.Warnings, aggWarnings...)

	if fallbacks > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d hücre sayısal olarak çözümlenemedi ve 0 kabul edildi.", fallbacks))
	}

	res.Entries = entries
	return res, nil
}

// extractMetadata pulls the company and debtor names from the first
// raw row; every data row repeats them.
func extractMetadata(rows []model.RawRow) (company, debtor string) {
	if len(rows) == 0 {
		return "", ""
	}
	return strings.TrimSpace(rows[0][model.ColCompanyName]),
		strings.TrimSpace(rows[0][model.ColDebtorName])
}

// PrepareRow strips identifying columns that duplicate the statement
// metadata and defaults the dispute column. The input row is left
// unmodified.
func PrepareRow(row model.RawRow) model.RawRow {
	out := make(model.RawRow, len(row))
	for k, v := range row {
		out[k] = v
	}
	for _, col := range model.DroppedColumns {
		delete(out, col)
	}
	if _, ok := out[model.ColDispute]; !ok {
		out[model.ColDispute] = "0"
	}
	return out
}

// toEntries converts sanitized raw rows into ledger entries,
// normalizing amounts and parsing dates. Each entry gets a stable
// ingest index. The second return counts cells that fell back to zero
// because they could not be parsed.
func toEntries(rows []model.RawRow) ([]model.Entry, int) {
	entries := make([]model.Entry, 0, len(rows))
	fallbacks := 0
	for i, r := range rows {
		amount, amountOK := normalize.Amount(r[model.ColAmount])
		balance, balanceOK := normalize.Amount(r[model.ColBalance])
		if !amountOK {
			fallbacks++
		}
		if !balanceOK {
			fallbacks++
		}
		entries = append(entries, model.Entry{
			Seq:             i,
			TransactionType: strings.TrimSpace(r[model.ColTransactionType]),
			Amount:          amount,
			Balance:         balance,
			TransactionDate: normalize.Date(r[model.ColTransactionDate]),
			InvoiceDate:     normalize.Date(r[model.ColInvoiceDate]),
			InvoiceDueDate:  normalize.Date(r[model.ColInvoiceDue]),
			InvoiceNumber:   strings.TrimSpace(r[model.ColInvoiceNo]),
		})
	}
	return entries, fallbacks
}
