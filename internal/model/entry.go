package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is one spreadsheet data row keyed by trimmed header label.
// Cell values are kept as raw strings exactly as extracted: locale
// formatted numbers, free-text dates, or Excel date serials rendered
// as digits.
type RawRow map[string]string

// Entry is one reconciled statement row.
type Entry struct {
	Seq             int // stable ingest index, assigned once per raw row
	TransactionType string
	Amount          decimal.Decimal // non-negative after splitting
	Dispute         decimal.Decimal // non-positive after splitting
	Balance         decimal.Decimal // balance as stated by the source row
	TransactionDate time.Time       // zero = unknown
	InvoiceDate     time.Time
	InvoiceDueDate  time.Time
	InvoiceNumber   string
}

// Result is the processed form of one input statement.
type Result struct {
	Entries     []Entry
	CompanyName string
	DebtorName  string
	Warnings    []string
}
