package jwt

import (
	"errors"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

var ErrInvalidClaims = errors.New("access token claims are missing or invalid")

type Service interface {
	GenerateAccessToken(employeeID string, email string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	// ActorFromClaims rebuilds the acting identity from verified claims.
	ActorFromClaims(claims map[string]interface{}) (user.Actor, error)
	RevokeToken(token string, expiresAt time.Time)
	IsTokenRevoked(token string) bool
	// PruneRevokedTokens forgets revocations whose token has expired anyway.
	PruneRevokedTokens() int
	// RevokeEmployee invalidates every token issued to employeeID so far.
	RevokeEmployee(employeeID string)
	IsEmployeeRevoked(employeeID string, issuedAt time.Time) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]time.Time // token -> its own expiry
	revokedEmployees          map[string]time.Time // employee -> revocation time
	mu                        sync.RWMutex
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]time.Time),
		revokedEmployees:          make(map[string]time.Time),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(employeeID string, email string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := j.now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"email":       email,
		"role":        string(role),
		"type":        tokenTypeAccess,
		"iat":         now.Unix(),
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) ActorFromClaims(claims map[string]interface{}) (user.Actor, error) {
	if tokenType, _ := claims["type"].(string); tokenType != tokenTypeAccess {
		return user.Actor{}, ErrInvalidClaims
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return user.Actor{}, ErrInvalidClaims
	}

	roleClaim, _ := claims["role"].(string)
	role, ok := user.ParseRole(roleClaim)
	if !ok {
		return user.Actor{}, ErrInvalidClaims
	}

	return user.Actor{ID: employeeID, Role: role}, nil
}

// RevokeToken blacklists token until expiresAt. Expired entries are pruned
// on each call so the list stays bounded by the number of live tokens.
func (j *JWTService) RevokeToken(token string, expiresAt time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.pruneLocked()
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) PruneRevokedTokens() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pruneLocked()
}

func (j *JWTService) pruneLocked() int {
	now := j.now()
	pruned := 0
	for t, exp := range j.revokedTokens {
		if exp.Before(now) {
			delete(j.revokedTokens, t)
			pruned++
		}
	}
	return pruned
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) RevokeEmployee(employeeID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedEmployees[employeeID] = j.now()
}

// IsEmployeeRevoked reports whether a token issued at issuedAt predates the
// employee's revocation. iat has second precision, so the comparison does too.
func (j *JWTService) IsEmployeeRevoked(employeeID string, issuedAt time.Time) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	revokedAt, ok := j.revokedEmployees[employeeID]
	if !ok {
		return false
	}
	return issuedAt.Unix() <= revokedAt.Unix()
}

// IssuedAt reads the iat claim, which jwx decodes as time.Time.
func IssuedAt(claims map[string]interface{}) (time.Time, bool) {
	switch iat := claims["iat"].(type) {
	case time.Time:
		return iat, true
	case float64:
		return time.Unix(int64(iat), 0), true
	case int64:
		return time.Unix(iat, 0), true
	}
	return time.Time{}, false
}
