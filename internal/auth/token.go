package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	autherrors "go-erp/internal/auth/errors"
	"go-erp/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const generatedKeySize = 32

// Claims is the token payload: sub carries the employee name.
type Claims struct {
	EmployeeID   int64  `json:"employeeId"`
	Name         string `json:"name"`
	PermissionID *int64 `json:"permissionId"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() contextutil.Principal {
	return contextutil.Principal{
		EmployeeID:   c.EmployeeID,
		Name:         c.Name,
		PermissionID: c.PermissionID,
		Role:         RoleForPermission(c.PermissionID),
	}
}

// TokenManager issues and verifies HS256 tokens with one symmetric key.
type TokenManager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenManager uses secret as the signing key. With an empty secret a random key is
// generated for the life of the process, and every restart invalidates issued tokens.
func NewTokenManager(secret string, ttl time.Duration, logger ...*zap.Logger) (*TokenManager, error) {
	l := zap.L().Named("auth.token")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.token")
	}

	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	key := []byte(secret)
	if secret == "" {
		key = make([]byte, generatedKeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate signing key: %w", err)
		}
		l.Warn("JWT_SECRET not set, using a generated signing key; tokens will not survive a restart")
	}

	return &TokenManager{key: key, ttl: ttl, now: time.Now}, nil
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

func (m *TokenManager) Issue(employeeID int64, name string, permissionID *int64) (string, error) {
	now := m.now()
	claims := Claims{
		EmployeeID:   employeeID,
		Name:         name,
		PermissionID: permissionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

// Parse verifies signature and expiry. It touches no store.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

// ParsePrincipal verifies the token and derives the request principal from its claims.
func (m *TokenManager) ParsePrincipal(tokenString string) (contextutil.Principal, error) {
	claims, err := m.Parse(tokenString)
	if err != nil {
		return contextutil.Principal{}, err
	}
	return claims.Principal(), nil
}
