package ledger

import (
	"context"
	"sync"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
)

// Repo is an in-memory implementation of ledger.Repository.
// It is safe for concurrent use: Append holds the lock across the whole
// read-length/assign-id/head-insert sequence.
type Repo struct {
	mu      sync.RWMutex
	entries []domain.Transaction // head-first
}

// NewRepo creates a ledger pre-populated with seed, which is taken as already
// being in head-first order.
func NewRepo(seed []domain.Transaction) *Repo {
	cp := make([]domain.Transaction, len(seed))
	copy(cp, seed)
	return &Repo{entries: cp}
}

func (r *Repo) List(ctx context.Context) ([]domain.Transaction, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *Repo) Append(ctx context.Context, description string, amount int64, date string) (domain.Transaction, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := domain.Transaction{
		ID:          len(r.entries) + 1,
		Description: description,
		Amount:      amount,
		Date:        date,
	}
	r.entries = append([]domain.Transaction{entry}, r.entries...)
	return entry, nil
}
