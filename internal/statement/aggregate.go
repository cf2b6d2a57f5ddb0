package statement

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ekstre-dev/ekstre/internal/model"
)

// nullDayKey groups undated rows separately from any real date.
const nullDayKey = "null"

// dayKey returns the grouping token for a transaction date.
func dayKey(t time.Time) string {
	if t.IsZero() {
		return nullDayKey
	}
	return t.Format("2006-01-02")
}

// AggregateCollections merges collection-type rows falling on the
// same calendar date into one row per date, summing the amount and
// dispute columns. Balance and transaction type are taken from the
// last row of the group, matching the source system; a group mixing
// several types gets a warning but keeps those values. Invoice detail
// is forfeited on aggregated rows. Non-collection rows pass through
// unchanged, and the merged sequence is sorted ascending by
// transaction date with undated rows first.
func AggregateCollections(entries []model.Entry) ([]model.Entry, []string) {
	var others, collections []model.Entry
	for _, e := range entries {
		if model.IsCollectionType(e.TransactionType) {
			collections = append(collections, e)
		} else {
			others = append(others, e)
		}
	}
	if len(collections) == 0 {
		return entries, nil
	}

	type group struct {
		entry model.Entry
		types []string
	}
	groups := make(map[string]*group)
	var order []string

	for _, e := range collections {
		key := dayKey(e.TransactionDate)
		g, ok := groups[key]
		if !ok {
			g = &group{entry: model.Entry{
				Seq:             e.Seq,
				TransactionDate: e.TransactionDate,
			}}
			groups[key] = g
			order = append(order, key)
		}
		g.entry.Amount = g.entry.Amount.Add(e.Amount)
		g.entry.Dispute = g.entry.Dispute.Add(e.Dispute)
		g.entry.Balance = e.Balance
		g.entry.TransactionType = e.TransactionType
		if !contains(g.types, e.TransactionType) {
			g.types = append(g.types, e.TransactionType)
		}
	}

	var warnings []string
	merged := make([]model.Entry, 0, len(others)+len(order))
	merged = append(merged, others...)
	for _, key := range order {
		g := groups[key]
		if len(g.types) > 1 {
			warnings = append(warnings, fmt.Sprintf(
				"Aynı güne (%s) düşen tahsilatlar birden fazla işlem türü içeriyor: %s",
				key, strings.Join(g.types, ", ")))
		}
		merged = append(merged, g.entry)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].TransactionDate.Before(merged[j].TransactionDate)
	})
	return merged, warnings
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
