package account

import (
	"context"
)

// Service covers the signup/login plumbing. No sessions or tokens are
// issued; callers are trusted to track identity themselves.
type Service interface {
	// Signup creates the employee row and its user identity atomically
	Signup(ctx context.Context, req SignupRequest) (SignupResponse, error)

	// Login verifies credentials against the stored hash
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
