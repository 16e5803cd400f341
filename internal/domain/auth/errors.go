package auth

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrAccessRevoked            = errors.New("access revoked, please contact HR")
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrTokenRevoked             = errors.New("token has been revoked")
	ErrGoogleEmailNotVerified   = errors.New("google account email is not verified")
	ErrGoogleAccessDeniedByUser = errors.New("google access denied by user")
	ErrSSONotConfigured         = errors.New("single sign-on is not configured")
)
