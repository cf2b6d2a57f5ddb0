package statement

import (
	"github.com/shopspring/decimal"

	"github.com/ekstre-dev/ekstre/internal/model"
)

// SplitAmounts routes negative transaction amounts into the dispute
// column: negative flows are disputes/reversals and must appear
// separately from normal amounts. After the split every entry
// satisfies Amount >= 0, Dispute <= 0, with at most one non-zero.
func SplitAmounts(entries []model.Entry) []model.Entry {
	out := make([]model.Entry, len(entries))
	for i, e := range entries {
		if e.Amount.IsNegative() {
			e.Dispute = e.Amount
			e.Amount = decimal.Zero
		} else {
			e.Dispute = decimal.Zero
		}
		out[i] = e
	}
	return out
}
