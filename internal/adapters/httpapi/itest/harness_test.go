package itest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Crestview-Financial/bank-portal-api/internal/adapters/httpapi"
	memcardcatalog "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/cardcatalog"
	memledger "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/ledger"
	memuserdir "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/userdir"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/accounts"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/auth"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/payments"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/auth/tokens"
	platformclock "github.com/Crestview-Financial/bank-portal-api/internal/platform/clock"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/demo"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/metrics"
	platformrandom "github.com/Crestview-Financial/bank-portal-api/internal/platform/random"
)

// testServer is a fully wired API over the memory adapters, with a manual clock
// and a scripted random source so every outcome is deterministic.
type testServer struct {
	baseURL string
	client  *http.Client
	clock   *platformclock.ManualClock
	tokens  *tokens.Service
}

func newTestServer(t *testing.T, draws ...float64) *testServer {
	t.Helper()

	if len(draws) == 0 {
		draws = []float64{0.9}
	}

	clk := platformclock.NewManualClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	tokenSvc := tokens.New(tokens.Config{Secret: []byte("itest-secret")}, clk)

	authSvc := auth.NewService(memuserdir.NewDirectory(demo.Users()), tokenSvc)
	accountsSvc := accounts.NewService(memcardcatalog.NewCatalog(demo.Cards()))
	paymentsSvc := payments.NewService(
		memledger.NewRepo(demo.Transactions()),
		clk,
		platformrandom.NewScripted(draws...),
	)

	api := httpapi.NewServer(authSvc, accountsSvc, paymentsSvc)
	api.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	api.Metrics = metrics.NewCollector()

	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		AuthMiddleware: httpapi.NewAuthMiddleware(tokenSvc),
		Logger:         api.Log,
		Metrics:        api.Metrics,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL: srv.URL,
		client:  srv.Client(),
		clock:   clk,
		tokens:  tokenSvc,
	}
}

func (s *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.baseURL+path, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

// login authenticates with the demo credentials and returns the bearer token.
func (s *testServer) login(t *testing.T) string {
	t.Helper()

	status, body := s.doJSON(t, http.MethodPost, "/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "testpassword123",
	})
	if status != http.StatusOK {
		t.Fatalf("login status=%d body=%s", status, body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("login returned empty token")
	}
	return out.Token
}

func decodeJSON(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}
