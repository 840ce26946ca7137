// Package tokens issues and verifies the signed bearer tokens that gate the API.
//
// Tokens are HS256 JWTs carrying the subject's id and email, valid for a fixed
// window from issuance. There is no server-side token state: verification is a pure
// function of the token bytes, the shared secret, and the current time.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
	clockport "github.com/Crestview-Financial/bank-portal-api/internal/ports/out/clock"
)

// ErrInvalidToken indicates the token failed signature or validity-window checks.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTTL is the validity window applied when none is configured.
const DefaultTTL = time.Hour

// Claims are the identity attributes embedded in a verified token.
type Claims struct {
	UserID int
	Email  string
}

// Config holds the signing parameters.
type Config struct {
	// Secret is the shared HMAC signing key.
	Secret []byte
	// TTL is the validity window from issuance; DefaultTTL when zero.
	TTL time.Duration
}

// Service issues and verifies tokens with a single shared secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clockport.Clock
	parser *jwt.Parser

	newJTI func() string
}

func New(cfg Config, clk clockport.Clock) *Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: cfg.Secret,
		ttl:    ttl,
		clock:  clk,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithTimeFunc(clk.Now),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		newJTI: uuid.NewString,
	}
}

type tokenClaims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for the user, valid from now until now + TTL.
func (s *Service) Issue(u domain.User) (string, error) {
	now := s.clock.Now()
	claims := tokenClaims{
		UserID: u.ID,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        s.newJTI(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token's signature and validity window and returns its claims.
// Any failure is reported as ErrInvalidToken; callers do not learn why.
func (s *Service) Verify(token string) (Claims, error) {
	var tc tokenClaims
	parsed, err := s.parser.ParseWithClaims(token, &tc, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return Claims{UserID: tc.UserID, Email: tc.Email}, nil
}
