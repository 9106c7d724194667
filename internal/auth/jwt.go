package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when a token fails validation.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// Token purposes. A token minted for one purpose is rejected for another,
// so a password-reset token can never authenticate a request.
const (
	PurposeAccess        = "access"
	PurposeVerifyEmail   = "verify-email"
	PurposeResetPassword = "reset-password"
)

// Claims carries the user identity and the purpose the token was minted for.
type Claims struct {
	UserID  uint64 `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens against a shared secret.
type Manager struct {
	secret []byte
	issuer string
}

// NewManager creates a token manager for the given shared secret.
func NewManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
		issuer: "taskflow-api",
	}
}

// Generate mints a token for the user with the given purpose and lifetime.
// Each token gets a unique ID so reset tokens stored on the user record are
// single-use: a second forgot-password request overwrites the stored value
// and invalidates the first link.
func (m *Manager) Generate(userID uint64, purpose string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   strconv.FormatUint(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses the token and checks its signature, expiry and purpose.
func (m *Manager) Verify(tokenString, purpose string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
