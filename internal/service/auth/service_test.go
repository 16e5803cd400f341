package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/grx10/hris-backend-go/internal/domain/auth"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/pkg/jwt"
	"github.com/grx10/hris-backend-go/internal/pkg/oauth"
	"github.com/grx10/hris-backend-go/internal/pkg/validator"
	"github.com/grx10/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

type fakeGoogle struct {
	info oauth.GoogleInformation
	err  error
}

func (f fakeGoogle) GenerateState() (string, error) { return "state", nil }
func (f fakeGoogle) RedirectURL(state string) string { return "https://accounts.google.com/?state=" + state }
func (f fakeGoogle) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &oauth2.Token{AccessToken: "google-" + code}, nil
}
func (f fakeGoogle) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	return f.info, nil
}

func setupAuth(t *testing.T, google oauth.GoogleService) (auth.AuthService, jwt.Service) {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	_, err = repo.Create(ctx, employee.Employee{ID: "EMP002", Name: "Michael Chen", Email: "michael@grx10.com", Role: user.RoleManager, PasswordHash: &hashed})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{ID: "EMP009", Name: "Former Staff", Email: "former@grx10.com", Role: user.RoleEmployee, PasswordHash: &hashed, Status: employee.EmploymentStatusExited})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{ID: "EMP010", Name: "SSO Only", Email: "sso@grx10.com", Role: user.RoleEmployee})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(repo, jwtService, google), jwtService
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := setupAuth(t, nil)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "michael@grx10.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "EMP002", resp.Employee.ID)

		decoded, err := jwtService.JWTAuth().Decode(resp.AccessToken)
		require.NoError(t, err)
		claims, err := decoded.AsMap(ctx)
		require.NoError(t, err)
		actor, err := jwtService.ActorFromClaims(claims)
		require.NoError(t, err)
		assert.Equal(t, user.RoleManager, actor.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "michael@grx10.com", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@grx10.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("no password set", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "sso@grx10.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("exited employee", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "former@grx10.com", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrAccessRevoked)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email"})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestLoginWithGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		svc, _ := setupAuth(t, nil)
		_, err := svc.LoginWithGoogle(ctx, "code")
		assert.ErrorIs(t, err, auth.ErrSSONotConfigured)
	})

	t.Run("verified directory email", func(t *testing.T) {
		svc, _ := setupAuth(t, fakeGoogle{info: oauth.GoogleInformation{Email: "sso@grx10.com", VerifiedEmail: true}})
		resp, err := svc.LoginWithGoogle(ctx, "code")
		require.NoError(t, err)
		assert.Equal(t, "EMP010", resp.Employee.ID)
	})

	t.Run("unverified email", func(t *testing.T) {
		svc, _ := setupAuth(t, fakeGoogle{info: oauth.GoogleInformation{Email: "sso@grx10.com"}})
		_, err := svc.LoginWithGoogle(ctx, "code")
		assert.ErrorIs(t, err, auth.ErrGoogleEmailNotVerified)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := setupAuth(t, fakeGoogle{info: oauth.GoogleInformation{Email: "stranger@gmail.com", VerifiedEmail: true}})
		_, err := svc.LoginWithGoogle(ctx, "code")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("exchange failure", func(t *testing.T) {
		svc, _ := setupAuth(t, fakeGoogle{err: errors.New("bad code")})
		_, err := svc.LoginWithGoogle(ctx, "code")
		assert.Error(t, err)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := setupAuth(t, nil)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "michael@grx10.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))
	assert.ErrorIs(t, svc.Logout(ctx, resp.AccessToken), auth.ErrTokenRevoked)

	assert.ErrorIs(t, svc.Logout(ctx, "garbage"), auth.ErrInvalidToken)
}
