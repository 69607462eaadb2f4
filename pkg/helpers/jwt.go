package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token fails verification for any
// reason: bad signature, malformed payload, wrong algorithm, or expiry.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies the bearer tokens that authenticate cart
// requests. It is stateless; the signing secret and TTL are injected at
// construction and read-only afterwards.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issue signs a token binding the given user id. Tokens carry an explicit
// expiry claim; Verify rejects them once it passes.
func (m *TokenManager) Issue(userID string) (string, time.Time, error) {
	exp := time.Now().Add(m.ttl)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

// Verify parses and validates a token, returning the user id it binds.
func (m *TokenManager) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if !tkn.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
