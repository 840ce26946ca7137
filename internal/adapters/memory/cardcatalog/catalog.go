package cardcatalog

import (
	"context"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
)

// Catalog is an in-memory implementation of cardcatalog.Catalog.
//
// The catalog is fixed at construction; List returns a copy so callers cannot
// mutate the backing slice.
type Catalog struct {
	cards []domain.Card
}

func NewCatalog(cards []domain.Card) *Catalog {
	cp := make([]domain.Card, len(cards))
	copy(cp, cards)
	return &Catalog{cards: cp}
}

func (c *Catalog) List(ctx context.Context) ([]domain.Card, error) {
	_ = ctx
	out := make([]domain.Card, len(c.cards))
	copy(out, c.cards)
	return out, nil
}
