package domain

// Transaction is a single ledger entry.
//
// Amount is in minor units; negative values are debits, positive values credits.
// Date is an ISO calendar date (YYYY-MM-DD). Entries are immutable once created.
type Transaction struct {
	ID          int
	Description string
	Amount      int64
	Date        string
}
