// Package demo provides the fixed mock dataset the service is seeded with.
//
// The dataset is intentionally tiny and well-known: tests and local clients rely on
// the exact values below.
package demo

import "github.com/Crestview-Financial/bank-portal-api/internal/domain"

// Users returns the credential directory seed.
func Users() []domain.User {
	return []domain.User{
		{ID: 1, Email: "test@example.com", Password: "testpassword123"},
	}
}

// Cards returns the stored payment card catalog seed, in catalog order.
func Cards() []domain.Card {
	return []domain.Card{
		{ID: 1, Last4: "4242", ExpiryMonth: "12", ExpiryYear: "2025"},
		{ID: 2, Last4: "5678", ExpiryMonth: "06", ExpiryYear: "2024"},
	}
}

// Transactions returns the ledger seed in display (head-first) order.
func Transactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: 1, Description: "Credit Card Payment", Amount: -5000, Date: "2024-02-15"},
		{ID: 2, Description: "Cashback Reward", Amount: 250, Date: "2024-02-14"},
		{ID: 3, Description: "Credit Card Payment", Amount: -3000, Date: "2024-02-10"},
		{ID: 4, Description: "Cashback Reward", Amount: 150, Date: "2024-02-09"},
		{ID: 5, Description: "Credit Card Payment", Amount: -2000, Date: "2024-02-05"},
	}
}
