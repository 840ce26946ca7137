package ledger

import (
	"context"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
)

// Repository provides access to the append-only transaction ledger.
//
// Ordering expectations:
//   - List returns entries head-first: the most recently appended entry comes first,
//     followed by older entries in their existing order.
//   - Append inserts at the head and assigns id = current ledger length + 1. Entries
//     are never removed, so the scheme cannot collide; it is not a max(id)+1 scheme
//     and would not survive deletions.
//
// Append must be atomic: two concurrent calls must not observe the same length or
// interleave their head insertions.
type Repository interface {
	List(ctx context.Context) ([]domain.Transaction, error)
	Append(ctx context.Context, description string, amount int64, date string) (domain.Transaction, error)
}
