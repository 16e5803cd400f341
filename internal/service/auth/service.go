package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grx10/hris-backend-go/internal/domain/auth"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/pkg/jwt"
	"github.com/grx10/hris-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
	google oauth.GoogleService
}

// NewAuthService wires login against the employee directory. googleService
// may be nil, in which case Google sign-in reports ErrSSONotConfigured.
func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		google:             googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, strings.TrimSpace(loginReq.Email))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if emp.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(emp)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	if a.google == nil {
		return auth.TokenResponse{}, auth.ErrSSONotConfigured
	}

	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange google code: %w", err)
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrGoogleEmailNotVerified
	}

	// Only existing directory entries may sign in; SSO never creates accounts.
	emp, err := a.EmployeeRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Warn("google sign-in for unknown email", "email", info.Email)
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return a.issue(emp)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	decoded, err := a.Service.JWTAuth().Decode(token)
	if err != nil {
		return auth.ErrInvalidToken
	}
	if a.Service.IsTokenRevoked(token) {
		return auth.ErrTokenRevoked
	}
	a.Service.RevokeToken(token, decoded.Expiration())
	return nil
}

func (a *AuthServiceImpl) issue(emp employee.Employee) (auth.TokenResponse, error) {
	if !emp.IsActive() {
		return auth.TokenResponse{}, auth.ErrAccessRevoked
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
		Employee:             employee.NewEmployeeResponse(emp),
	}, nil
}
