package auth

import (
	"context"
)

type AuthService interface {
	// Login verifies email and password against the employee directory.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// LoginWithGoogle signs in the directory entry matching a verified Google email.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
	// Logout revokes the presented access token.
	Logout(ctx context.Context, token string) error
}
