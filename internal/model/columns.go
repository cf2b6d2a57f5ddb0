package model

// Column labels as they appear in the source statements.
const (
	ColCompanyName     = "Firma Adı"
	ColDebtorName      = "Borçlu Adı"
	ColAmount          = "İşlem Tutarı"
	ColTransactionDate = "İşlemTarihi"
	ColTransactionType = "İşlem Türü"
	ColDispute         = "Dispute"
	ColBalance         = "Bakiye"
	ColInvoiceDate     = "FaturaTarihi"
	ColInvoiceDue      = "Fatura Vadesi"
	ColInvoiceNo       = "Fatura No"
)

// Output labels for the split amount columns.
const (
	ColAmountPlus  = "İşlem Tutarı (+)"
	ColAmountMinus = "İşlem Tutarı (-)"
)

// DroppedColumns are identifying columns redundant with the
// statement-level metadata; the sanitizer removes them.
var DroppedColumns = []string{
	"Firma No",
	"Firma Adı",
	"Ekno",
	"Döviz Cinsi",
	"Borçlu No",
	"Borçlu Adı",
	"Muhabir No",
}

// Transaction types with special handling.
const (
	TypeDevir       = "Devir"
	TypeFaturaGiris = "FaturaGiris"
)

// collectionTypes are cash/cheque/note collections and reversals,
// subject to same-day aggregation.
var collectionTypes = map[string]bool{
	"Tahsilat":  true,
	"GeriDevir": true,
	"Senet":     true,
	"Çek":       true,
}

// unmatchedTypes mark unreconciled collections; their presence is
// surfaced as a statement warning.
var unmatchedTypes = map[string]bool{
	"EslenmemisTahsilat": true,
	"EslenmemisCek":      true,
	"EslenmemisSenet":    true,
}

// IsCollectionType reports whether t is subject to same-day aggregation.
func IsCollectionType(t string) bool { return collectionTypes[t] }

// IsUnmatchedType reports whether t denotes an unreconciled balance.
func IsUnmatchedType(t string) bool { return unmatchedTypes[t] }
