// Package payments owns the transaction ledger: listing it and appending bill
// payment attempts to it.
package payments

import (
	"context"
	"net/http"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
	clockport "github.com/Crestview-Financial/bank-portal-api/internal/ports/out/clock"
	ledgerport "github.com/Crestview-Financial/bank-portal-api/internal/ports/out/ledger"
	randomport "github.com/Crestview-Financial/bank-portal-api/internal/ports/out/random"
)

const paymentDescription = "Credit Card Payment"

// failureThreshold: draws at or below this value fail the payment (20% nominal).
const failureThreshold = 0.2

type Service struct {
	ledger ledgerport.Repository
	clk    clockport.Clock
	rng    randomport.Source
}

func NewService(ledger ledgerport.Repository, clk clockport.Clock, rng randomport.Source) *Service {
	return &Service{ledger: ledger, clk: clk, rng: rng}
}

// SubmitPaymentInput carries the payment request fields.
// CardID is accepted but never validated against the card catalog or used to
// select a funding source.
type SubmitPaymentInput struct {
	CardID int
	Amount int64
}

// Result reports the outcome of a valid submission.
//
// A failed simulation is not an error: it is an expected branch of normal
// operation, reported through Success=false with no ledger mutation.
type Result struct {
	Success bool
	// Entry is the appended ledger record; zero unless Success.
	Entry domain.Transaction
}

// ListTransactions returns the ledger in its current head-first order.
func (s *Service) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.ledger.List(ctx)
}

// SubmitPayment validates the input, draws the simulated outcome and, on success,
// appends the payment to the head of the ledger as a debit.
//
// The payment is always recorded as -Amount regardless of the input's sign.
func (s *Service) SubmitPayment(ctx context.Context, in SubmitPaymentInput) (Result, error) {
	if in.CardID == 0 || in.Amount == 0 {
		return Result{}, &Error{
			Status:  http.StatusBadRequest,
			Code:    "MISSING_FIELDS",
			Message: "Missing required fields",
		}
	}

	if s.rng.Float64() <= failureThreshold {
		return Result{Success: false}, nil
	}

	date := s.clk.Now().Format("2006-01-02")
	entry, err := s.ledger.Append(ctx, paymentDescription, -in.Amount, date)
	if err != nil {
		return Result{}, err
	}
	return Result{Success: true, Entry: entry}, nil
}
