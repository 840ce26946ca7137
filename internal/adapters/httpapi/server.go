package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Crestview-Financial/bank-portal-api/internal/app/accounts"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/auth"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/payments"
	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/metrics"
)

// Server is the HTTP adapter: it decodes requests, delegates to the app services,
// and maps their results onto the fixed external JSON interface.
type Server struct {
	Auth     *auth.Service
	Accounts *accounts.Service
	Payments *payments.Service

	// Log and Metrics are optional; nil disables the corresponding output.
	Log     *slog.Logger
	Metrics *metrics.Collector
}

func NewServer(authSvc *auth.Service, accountsSvc *accounts.Service, paymentsSvc *payments.Service) *Server {
	return &Server{
		Auth:     authSvc,
		Accounts: accountsSvc,
		Payments: paymentsSvc,
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	token, err := s.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var ae *auth.Error
		if errors.As(err, &ae) {
			if s.Metrics != nil {
				s.Metrics.RecordLoginFailure()
			}
			writeMessage(w, ae.Status, ae.Message)
			return
		}
		s.logger().Error("login failed", slog.Any("error", err))
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	// Reaching this handler means the auth middleware already verified the token.
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func (s *Server) handleCreditScore(w http.ResponseWriter, r *http.Request) {
	score, err := s.Accounts.CreditScore(r.Context())
	if err != nil {
		s.internalError(w, "credit score lookup failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"score": score})
}

type cardResponse struct {
	ID          int    `json:"id"`
	Last4       string `json:"last4"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.Accounts.ListCards(r.Context())
	if err != nil {
		s.internalError(w, "card listing failed", err)
		return
	}
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardResponse{
			ID:          c.ID,
			Last4:       c.Last4,
			ExpiryMonth: c.ExpiryMonth,
			ExpiryYear:  c.ExpiryYear,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type transactionResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
}

func transactionsFromDomain(ts []domain.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, transactionResponse{
			ID:          t.ID,
			Description: t.Description,
			Amount:      t.Amount,
			Date:        t.Date,
		})
	}
	return out
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Payments.ListTransactions(r.Context())
	if err != nil {
		s.internalError(w, "transaction listing failed", err)
		return
	}
	writeJSON(w, http.StatusOK, transactionsFromDomain(ts))
}

type payBillRequest struct {
	CardID int   `json:"cardId"`
	Amount int64 `json:"amount"`
}

type payBillResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handlePayBill(w http.ResponseWriter, r *http.Request) {
	var req payBillRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	res, err := s.Payments.SubmitPayment(r.Context(), payments.SubmitPaymentInput{
		CardID: req.CardID,
		Amount: req.Amount,
	})
	if err != nil {
		var ae *payments.Error
		if errors.As(err, &ae) {
			writeMessage(w, ae.Status, ae.Message)
			return
		}
		s.internalError(w, "payment submission failed", err)
		return
	}

	if s.Metrics != nil {
		s.Metrics.RecordPaymentOutcome(res.Success)
	}

	if !res.Success {
		// Expected branch of normal operation, not a systemic fault.
		s.logger().Info("payment declined by simulation",
			slog.Int("cardId", req.CardID),
			slog.Int64("amount", req.Amount),
		)
		writeJSON(w, http.StatusInternalServerError, payBillResponse{
			Success: false,
			Message: "Payment failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, payBillResponse{
		Success: true,
		Message: "Payment successful",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Server is running",
	})
}

func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	s.logger().Error(msg, slog.Any("error", err))
	writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
}
