package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekstre-dev/ekstre/internal/model"
)

func TestCarryForward_LatestPriorBalance(t *testing.T) {
	entries := []model.Entry{
		entry(0, "FaturaGiris", day(2023, 6, 1), "500", "500"),
		entry(1, "FaturaGiris", day(2023, 12, 31), "300", "800"),
	}

	got := carryForward(entries, day(2024, 1, 1))
	require.Len(t, got, 1, "all prior activity folds into the devir row")

	devir := got[0]
	assert.Equal(t, model.TypeDevir, devir.TransactionType)
	assert.Equal(t, day(2024, 1, 1), devir.TransactionDate)
	assert.Equal(t, "800", devir.Amount.String())
	assert.Equal(t, "800", devir.Balance.String())
	assert.Empty(t, devir.InvoiceNumber)
	assert.True(t, devir.InvoiceDate.IsZero())
}

func TestCarryForward_NoPriorActivity(t *testing.T) {
	entries := []model.Entry{
		entry(0, "FaturaGiris", day(2024, 2, 1), "100", "100"),
	}

	got := carryForward(entries, day(2024, 1, 1))
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.IsZero())
	assert.True(t, got[0].Balance.IsZero())
	assert.Equal(t, day(2024, 2, 1), got[1].TransactionDate)
}

func TestCarryForward_StraddlingInvoices(t *testing.T) {
	straddling := entry(2, "FaturaGiris", day(2024, 2, 1), "150", "950")
	straddling.InvoiceDate = day(2023, 11, 15)

	entries := []model.Entry{
		entry(0, "FaturaGiris", day(2023, 12, 31), "800", "800"),
		entry(1, "Tahsilat", day(2024, 1, 10), "100", "700"),
		straddling,
	}

	got := carryForward(entries, day(2024, 1, 1))
	require.Len(t, got, 2)

	// The prior-year invoice is folded into the devir and excluded
	// from the retained window.
	assert.Equal(t, "950", got[0].Amount.String())
	assert.Equal(t, "Tahsilat", got[1].TransactionType)
}

func TestCarryForward_InvoiceSameYearNotFolded(t *testing.T) {
	invoice := entry(1, "FaturaGiris", day(2024, 2, 1), "150", "950")
	invoice.InvoiceDate = day(2024, 1, 20) // same year, not straddling

	entries := []model.Entry{
		entry(0, "FaturaGiris", day(2023, 12, 31), "800", "800"),
		invoice,
	}

	got := carryForward(entries, day(2024, 1, 1))
	require.Len(t, got, 2)
	assert.Equal(t, "800", got[0].Amount.String())
	assert.Equal(t, "F", got[1].TransactionType[:1])
}

func TestCarryForward_FiltersWindow(t *testing.T) {
	undated := entry(2, "Tahsilat", time.Time{}, "10", "10")

	entries := []model.Entry{
		entry(0, "FaturaGiris", day(2023, 12, 1), "500", "500"),
		entry(1, "Tahsilat", day(2024, 1, 1), "100", "400"),
		undated,
	}

	got := carryForward(entries, day(2024, 1, 1))
	require.Len(t, got, 2)
	// Rows before the cutoff and undated rows drop out; on-cutoff
	// rows are retained.
	assert.Equal(t, model.TypeDevir, got[0].TransactionType)
	assert.Equal(t, day(2024, 1, 1), got[1].TransactionDate)
	assert.Equal(t, "Tahsilat", got[1].TransactionType)
}

func TestCarryForward_EqualDatesLastWins(t *testing.T) {
	entries := []model.Entry{
		entry(0, "FaturaGiris", day(2023, 12, 31), "100", "100"),
		entry(1, "Tahsilat", day(2023, 12, 31), "50", "50"),
	}

	got := carryForward(entries, day(2024, 1, 1))
	require.Len(t, got, 1)
	assert.Equal(t, "50", got[0].Balance.String())
}
