package token

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

// DefaultValidity is how long an issued session token stays valid.
const DefaultValidity = time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Service issues and verifies signed session tokens. The secret is injected
// at construction and never leaves the process.
type Service struct {
	secret   []byte
	validity time.Duration
}

func NewService(secret string, validity time.Duration) *Service {
	return &Service{secret: []byte(secret), validity: validity}
}

// Issue signs a token for the given identity, expiring after the service's
// validity window.
func (s *Service) Issue(id uint, name string) (string, error) {
	expTime := time.Now().Add(s.validity)

	claims := &Claims{
		ID:   id,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return t, nil
}

// Verify checks the signature and expiry of a token and returns its claims.
// Any failure, whether a malformed token, a wrong signature, an unexpected
// signing method or a past expiry, yields ErrInvalidToken.
func (s *Service) Verify(requestToken string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
