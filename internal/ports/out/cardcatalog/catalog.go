package cardcatalog

import (
	"context"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
)

// Catalog provides read-only access to the stored payment card catalog.
//
// Ordering expectation: List returns cards in their original insertion order.
type Catalog interface {
	List(ctx context.Context) ([]domain.Card, error)
}
