package userdir

import (
	"context"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
)

// Directory provides read-only access to the credential directory.
//
// Lookup semantics are exact-match equality on both fields: no normalization, no
// hashing, no timing-safe comparison. The directory never changes after startup.
type Directory interface {
	// Authenticate returns the user whose email and password both match exactly,
	// or ErrNotFound when no record matches.
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
}
