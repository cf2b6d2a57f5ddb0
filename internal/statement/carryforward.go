package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ekstre-dev/ekstre/internal/model"
	"github.com/ekstre-dev/ekstre/internal/normalize"
)

// carryForward computes the opening balance ("devir") as of the
// cutoff date and replaces all prior activity with a single synthetic
// leading row.
//
// The base devir is the balance of the latest-dated entry strictly
// before the cutoff (zero when there is none). Invoices booked in the
// cutoff's calendar year but dated in the preceding year are folded
// into the devir instead of being listed: their signed amounts are
// added and the rows excluded by ingest index. The retained window is
// then limited to dated rows on or after the cutoff.
//
// Entries must be normalized but not yet split; the devir row flows
// through the same split/aggregate stages as everything else.
func carryForward(entries []model.Entry, cutoff time.Time) []model.Entry {
	cutoff = normalize.Day(cutoff)

	devir := decimal.Zero
	var latest time.Time
	found := false
	for _, e := range entries {
		if e.TransactionDate.IsZero() || !e.TransactionDate.Before(cutoff) {
			continue
		}
		// On equal dates the later row wins, like a stable
		// sort-ascending-take-last.
		if !found || !e.TransactionDate.Before(latest) {
			latest = e.TransactionDate
			devir = e.Balance
			found = true
		}
	}

	year := cutoff.Year()
	excluded := make(map[int]bool)
	for _, e := range entries {
		if e.TransactionDate.IsZero() || e.InvoiceDate.IsZero() {
			continue
		}
		if e.TransactionDate.Year() == year &&
			e.InvoiceDate.Year() == year-1 &&
			e.TransactionType == model.TypeFaturaGiris {
			devir = devir.Add(e.Amount)
			excluded[e.Seq] = true
		}
	}

	kept := make([]model.Entry, 0, len(entries)+1)
	kept = append(kept, model.Entry{
		Seq:             -1,
		TransactionType: model.TypeDevir,
		TransactionDate: cutoff,
		Amount:          devir,
		Balance:         devir,
	})
	for _, e := range entries {
		if excluded[e.Seq] {
			continue
		}
		if e.TransactionDate.IsZero() || e.TransactionDate.Before(cutoff) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
