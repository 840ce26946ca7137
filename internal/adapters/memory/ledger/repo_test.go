package ledger

import (
	"context"
	"testing"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
)

func TestAppendToEmptyLedger(t *testing.T) {
	t.Parallel()

	r := NewRepo(nil)
	entry, err := r.Append(context.Background(), "Credit Card Payment", -1000, "2024-03-01")
	if err != nil {
		t.Fatalf("Append() err=%v", err)
	}
	if entry.ID != 1 {
		t.Fatalf("first id=%d, want 1", entry.ID)
	}
	if entry.Amount != -1000 || entry.Date != "2024-03-01" {
		t.Fatalf("entry=%+v", entry)
	}
}

func TestSeedSliceIsCopied(t *testing.T) {
	t.Parallel()

	seed := []domain.Transaction{{ID: 1, Description: "Cashback Reward", Amount: 250, Date: "2024-02-14"}}
	r := NewRepo(seed)
	seed[0].Amount = 0

	got, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List() err=%v", err)
	}
	if got[0].Amount != 250 {
		t.Fatalf("repo shares seed backing array")
	}
}
