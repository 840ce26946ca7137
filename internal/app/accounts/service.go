// Package accounts exposes the read-only protected account resources.
package accounts

import (
	"context"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
	"github.com/Crestview-Financial/bank-portal-api/internal/ports/out/cardcatalog"
)

// creditScore is a fixed demonstration value; no bureau integration exists.
const creditScore = 750

type Service struct {
	cards cardcatalog.Catalog
}

func NewService(cards cardcatalog.Catalog) *Service {
	return &Service{cards: cards}
}

// CreditScore returns the caller's credit score.
// The value is constant and, like the other account resources, is not filtered by
// the authenticated identity.
func (s *Service) CreditScore(ctx context.Context) (int, error) {
	_ = ctx
	return creditScore, nil
}

// ListCards returns the full stored-card catalog in its original order.
func (s *Service) ListCards(ctx context.Context) ([]domain.Card, error) {
	return s.cards.List(ctx)
}
