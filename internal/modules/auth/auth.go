package auth

import "context"

// Service defines the interface for the admin login gate.
type Service interface {
	// Login checks the shared admin password and returns a signed token.
	Login(ctx context.Context, password string) (string, error)

	// Verify reports whether a token was issued by Login and is still valid.
	Verify(token string) error
}
