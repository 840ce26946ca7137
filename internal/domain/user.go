package domain

// User is an account identity from the credential directory.
//
// The directory is a process-lifetime constant seeded at startup; records are never
// created or mutated at runtime. Passwords are stored in the clear — this is a
// demonstration backend and the directory is mock data, not a real user store.
type User struct {
	ID       int
	Email    string
	Password string
}
