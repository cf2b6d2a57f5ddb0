package statement

import (
	"fmt"
	"strings"

	"github.com/ekstre-dev/ekstre/internal/model"
	"github.com/ekstre-dev/ekstre/internal/normalize"
)

// ConfirmationOK is the note recorded when the trailing subtotal row
// matches the prior balance. It is informational and never surfaced
// as a warning.
const ConfirmationOK = "Teyit Başarılı"

// Confirm checks the statement's trailing subtotal convention: the
// source system appends a machine-generated final row whose
// transaction amount restates the previous row's balance. When the
// two match, the subtotal row is dropped. When they do not, the row
// is kept and the returned note names both values.
//
// The check only applies when the statement has at least two rows and
// the first row carries both the amount and balance columns.
func Confirm(rows []model.RawRow) ([]model.RawRow, string) {
	if len(rows) < 2 {
		return rows, ""
	}
	if _, ok := rows[0][model.ColAmount]; !ok {
		return rows, ""
	}
	if _, ok := rows[0][model.ColBalance]; !ok {
		return rows, ""
	}

	last, _ := normalize.Amount(rows[len(rows)-1][model.ColAmount])
	prior, _ := normalize.Amount(rows[len(rows)-2][model.ColBalance])

	if last.Equal(prior) {
		return rows[:len(rows)-1], ConfirmationOK
	}
	return rows, fmt.Sprintf("Alt toplam uyuşmuyor (Son İşlem: %s, Önceki Bakiye: %s)", last, prior)
}

// UnmatchedWarning returns a warning when any row carries an
// unmatched transaction type, independent of confirmation status.
func UnmatchedWarning(rows []model.RawRow) string {
	for _, r := range rows {
		if model.IsUnmatchedType(strings.TrimSpace(r[model.ColTransactionType])) {
			return "Ekstrede eşlenmemiş bakiyeler var."
		}
	}
	return ""
}
