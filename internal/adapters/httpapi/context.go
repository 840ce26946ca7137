package httpapi

import (
	"context"

	"github.com/Crestview-Financial/bank-portal-api/internal/platform/auth/tokens"
)

type claimsKey struct{}

// WithClaims stores the verified token claims in the request context.
func WithClaims(ctx context.Context, c tokens.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims attached by the auth middleware.
func ClaimsFromContext(ctx context.Context) (tokens.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(tokens.Claims)
	return c, ok && c.UserID != 0
}
