// Package contracttest holds behavioral contract suites shared by all adapter
// implementations of a port. Each adapter package runs the relevant suite from its
// own contract_test.go.
package contracttest

import (
	"context"
	"sync"
	"testing"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
	ledgerport "github.com/Crestview-Financial/bank-portal-api/internal/ports/out/ledger"
)

// LedgerFactory builds a fresh repository seeded with the given head-first entries.
type LedgerFactory func(t *testing.T, seed []domain.Transaction) ledgerport.Repository

var ledgerSeed = []domain.Transaction{
	{ID: 1, Description: "Credit Card Payment", Amount: -5000, Date: "2024-02-15"},
	{ID: 2, Description: "Cashback Reward", Amount: 250, Date: "2024-02-14"},
	{ID: 3, Description: "Credit Card Payment", Amount: -3000, Date: "2024-02-10"},
}

// RunLedger exercises the ledger.Repository contract against an implementation.
func RunLedger(t *testing.T, factory LedgerFactory) {
	t.Helper()

	t.Run("ListPreservesSeedOrder", func(t *testing.T) {
		r := factory(t, ledgerSeed)
		got, err := r.List(context.Background())
		if err != nil {
			t.Fatalf("List() err=%v", err)
		}
		if len(got) != len(ledgerSeed) {
			t.Fatalf("List() len=%d, want %d", len(got), len(ledgerSeed))
		}
		for i := range ledgerSeed {
			if got[i] != ledgerSeed[i] {
				t.Fatalf("List()[%d]=%+v, want %+v", i, got[i], ledgerSeed[i])
			}
		}
	})

	t.Run("AppendInsertsAtHeadWithNextID", func(t *testing.T) {
		r := factory(t, ledgerSeed)
		entry, err := r.Append(context.Background(), "Credit Card Payment", -1000, "2024-03-01")
		if err != nil {
			t.Fatalf("Append() err=%v", err)
		}
		if entry.ID != len(ledgerSeed)+1 {
			t.Fatalf("Append() id=%d, want %d", entry.ID, len(ledgerSeed)+1)
		}

		got, err := r.List(context.Background())
		if err != nil {
			t.Fatalf("List() err=%v", err)
		}
		if len(got) != len(ledgerSeed)+1 {
			t.Fatalf("List() len=%d, want %d", len(got), len(ledgerSeed)+1)
		}
		if got[0] != entry {
			t.Fatalf("head=%+v, want %+v", got[0], entry)
		}
		if got[1] != ledgerSeed[0] {
			t.Fatalf("List()[1]=%+v, want prior head %+v", got[1], ledgerSeed[0])
		}
	})

	t.Run("ConcurrentAppendsAssignUniqueIDs", func(t *testing.T) {
		r := factory(t, nil)
		const n = 20

		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()
				if _, err := r.Append(context.Background(), "Credit Card Payment", -100, "2024-03-01"); err != nil {
					t.Errorf("Append() err=%v", err)
				}
			}()
		}
		wg.Wait()

		got, err := r.List(context.Background())
		if err != nil {
			t.Fatalf("List() err=%v", err)
		}
		if len(got) != n {
			t.Fatalf("List() len=%d, want %d", len(got), n)
		}
		seen := make(map[int]bool, n)
		for _, e := range got {
			if seen[e.ID] {
				t.Fatalf("duplicate id %d", e.ID)
			}
			seen[e.ID] = true
			if e.ID < 1 || e.ID > n {
				t.Fatalf("id %d outside [1,%d]", e.ID, n)
			}
		}
	})

	t.Run("ListReturnsIsolatedCopy", func(t *testing.T) {
		r := factory(t, ledgerSeed)
		first, err := r.List(context.Background())
		if err != nil {
			t.Fatalf("List() err=%v", err)
		}
		first[0].Amount = 999999

		second, err := r.List(context.Background())
		if err != nil {
			t.Fatalf("List() err=%v", err)
		}
		if second[0].Amount != ledgerSeed[0].Amount {
			t.Fatalf("repo state mutated through List result")
		}
	})
}
