// Package auth implements the login use-case: credential lookup followed by
// bearer-token issuance.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/Crestview-Financial/bank-portal-api/internal/platform/auth/tokens"
	"github.com/Crestview-Financial/bank-portal-api/internal/ports/out/userdir"
)

type Service struct {
	dir    userdir.Directory
	tokens *tokens.Service
}

func NewService(dir userdir.Directory, tokenSvc *tokens.Service) *Service {
	return &Service{dir: dir, tokens: tokenSvc}
}

// Login authenticates the credential pair against the directory and issues a
// signed bearer token for the matched identity.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.dir.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, userdir.ErrNotFound) {
			return "", &Error{
				Status:  http.StatusUnauthorized,
				Code:    "INVALID_CREDENTIALS",
				Message: "Invalid credentials",
			}
		}
		return "", err
	}
	return s.tokens.Issue(u)
}
