package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/auth/tokens"
	platformclock "github.com/Crestview-Financial/bank-portal-api/internal/platform/clock"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/config"
)

// Dev-only bearer token minter.
//
// Mints the same HS256 tokens the API issues at /login, so curl sessions and
// load scripts can skip the login round trip:
//
//	TOKEN=$(go run ./cmd/devtoken -email test@example.com)
//	curl -H "Authorization: Bearer $TOKEN" localhost:8080/cards
//
// The secret must match the running server's TOKEN_SECRET.

func main() {
	var (
		id     = flag.Int("id", 1, "user id claim")
		email  = flag.String("email", "test@example.com", "user email claim")
		secret = flag.String("secret", "", "signing secret (defaults to $TOKEN_SECRET, then the demo default)")
		ttl    = flag.Duration("ttl", tokens.DefaultTTL, "token validity window")
	)
	flag.Parse()

	key := *secret
	if key == "" {
		key = os.Getenv("TOKEN_SECRET")
	}
	if key == "" {
		key = config.InsecureDefaultSecret
	}

	svc := tokens.New(tokens.Config{
		Secret: []byte(key),
		TTL:    *ttl,
	}, platformclock.NewSystemClock())

	token, err := svc.Issue(domain.User{ID: *id, Email: *email})
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "id=%d email=%s exp=%s\n", *id, *email, time.Now().Add(*ttl).UTC().Format(time.RFC3339))
}
