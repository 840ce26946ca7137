package domain

// Card is a stored payment card from the static catalog.
type Card struct {
	ID int
	// Last4 is the final four digits of the card number; the full PAN is never held.
	Last4       string
	ExpiryMonth string
	ExpiryYear  string
}
