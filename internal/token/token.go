package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// Manager issues and verifies the HMAC-signed access/refresh token pair used
// by the API. The subject claim carries the user id.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

type claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// IssuePair returns a fresh access and refresh token for the user.
func (m *Manager) IssuePair(userID uint64) (access string, refresh string, err error) {
	access, err = m.sign(userID, typeAccess, m.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = m.sign(userID, typeRefresh, m.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Refresh validates a refresh token and issues a new access token.
func (m *Manager) Refresh(refreshToken string) (string, error) {
	userID, err := m.parse(refreshToken, typeRefresh)
	if err != nil {
		return "", err
	}
	return m.sign(userID, typeAccess, m.accessTTL)
}

// VerifyAccess validates an access token and returns the user id it carries.
func (m *Manager) VerifyAccess(accessToken string) (uint64, error) {
	return m.parse(accessToken, typeAccess)
}

func (m *Manager) sign(userID uint64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

func (m *Manager) parse(tokenStr, wantType string) (uint64, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	if c.TokenType != wantType {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
