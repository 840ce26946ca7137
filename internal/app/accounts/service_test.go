package accounts

import (
	"context"
	"testing"

	memcardcatalog "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/cardcatalog"
	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
)

func TestCreditScoreIsConstant(t *testing.T) {
	t.Parallel()

	svc := NewService(memcardcatalog.NewCatalog(nil))
	for i := 0; i < 3; i++ {
		score, err := svc.CreditScore(context.Background())
		if err != nil {
			t.Fatalf("CreditScore() err=%v", err)
		}
		if score != 750 {
			t.Fatalf("CreditScore()=%d, want 750", score)
		}
	}
}

func TestListCardsPreservesCatalogOrder(t *testing.T) {
	t.Parallel()

	seed := []domain.Card{
		{ID: 1, Last4: "4242", ExpiryMonth: "12", ExpiryYear: "2025"},
		{ID: 2, Last4: "5678", ExpiryMonth: "06", ExpiryYear: "2024"},
	}
	svc := NewService(memcardcatalog.NewCatalog(seed))

	got, err := svc.ListCards(context.Background())
	if err != nil {
		t.Fatalf("ListCards() err=%v", err)
	}
	if len(got) != len(seed) {
		t.Fatalf("len=%d, want %d", len(got), len(seed))
	}
	for i := range seed {
		if got[i] != seed[i] {
			t.Fatalf("ListCards()[%d]=%+v, want %+v", i, got[i], seed[i])
		}
	}
}
