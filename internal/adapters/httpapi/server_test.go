package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	memcardcatalog "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/cardcatalog"
	memledger "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/ledger"
	memuserdir "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/userdir"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/accounts"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/auth"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/payments"
	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/auth/tokens"
	platformclock "github.com/Crestview-Financial/bank-portal-api/internal/platform/clock"
	platformrandom "github.com/Crestview-Financial/bank-portal-api/internal/platform/random"
)

type fixture struct {
	handler http.Handler
	tokens  *tokens.Service
	user    domain.User
}

func newFixture(t *testing.T, draws ...float64) *fixture {
	t.Helper()

	if len(draws) == 0 {
		draws = []float64{0.9}
	}
	clk := platformclock.NewManualClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	tokenSvc := tokens.New(tokens.Config{Secret: []byte("test-secret")}, clk)
	user := domain.User{ID: 1, Email: "test@example.com", Password: "testpassword123"}

	srv := NewServer(
		auth.NewService(memuserdir.NewDirectory([]domain.User{user}), tokenSvc),
		accounts.NewService(memcardcatalog.NewCatalog([]domain.Card{
			{ID: 1, Last4: "4242", ExpiryMonth: "12", ExpiryYear: "2025"},
		})),
		payments.NewService(memledger.NewRepo(nil), clk, platformrandom.NewScripted(draws...)),
	)
	srv.Log = slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewRouter(srv, RouterOptions{
		AuthMiddleware: NewAuthMiddleware(tokenSvc),
		Logger:         srv.Log,
	})
	return &fixture{handler: handler, tokens: tokenSvc, user: user}
}

func (f *fixture) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) token(t *testing.T) string {
	t.Helper()
	tok, err := f.tokens.Issue(f.user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func TestHandleLoginMalformedBody(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	// A body the decoder cannot parse is treated as empty credentials.
	for _, body := range []string{"", "not json", `{"email": 42}`} {
		rec := f.do(t, http.MethodPost, "/login", "", body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("body %q: status=%d", body, rec.Code)
		}
		var out struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Message != "Invalid credentials" {
			t.Fatalf("body %q: message=%q", body, out.Message)
		}
	}
}

func TestHandleLoginContentType(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/login", "", `{"email":"test@example.com","password":"testpassword123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type=%q", ct)
	}
}

func TestHandlePayBillMalformedBody(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	tok := f.token(t)

	rec := f.do(t, http.MethodPost, "/pay-bill", tok, "not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body)
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Missing required fields" {
		t.Fatalf("message=%q", out.Message)
	}
}

func TestHandleCardsShape(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	tok := f.token(t)

	rec := f.do(t, http.MethodGet, "/cards", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body)
	}
	var raw []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("got %d cards", len(raw))
	}
	for _, key := range []string{"id", "last4", "expiryMonth", "expiryYear"} {
		if _, ok := raw[0][key]; !ok {
			t.Fatalf("card missing %q field: %s", key, rec.Body)
		}
	}
}

func TestHandleTransactionsEmptyLedgerIsArray(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	tok := f.token(t)

	rec := f.do(t, http.MethodGet, "/transactions", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("empty ledger body=%q, want []", got)
	}
}

func TestHandlePayBillOutcomes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		draw        float64
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{"success", 0.9, http.StatusOK, true, "Payment successful"},
		{"declined", 0.1, http.StatusInternalServerError, false, "Payment failed"},
		{"boundary declined", 0.2, http.StatusInternalServerError, false, "Payment failed"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, tc.draw)
			tok := f.token(t)

			rec := f.do(t, http.MethodPost, "/pay-bill", tok, `{"cardId":1,"amount":1000}`)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status=%d body=%s", rec.Code, rec.Body)
			}
			var out struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.Success != tc.wantSuccess || out.Message != tc.wantMessage {
				t.Fatalf("body=%s", rec.Body)
			}
		})
	}
}

func TestRecoveryMiddlewareConvertsPanic(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewRecoveryMiddleware(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", rec.Code)
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Internal Server Error" {
		t.Fatalf("message=%q", out.Message)
	}
}
