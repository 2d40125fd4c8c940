package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned by ParseAccessToken for a structurally valid
// token past its expiry. Clients treat it as the signal to refresh.
var ErrTokenExpired = errors.New("access token expired")

// AccessClaims is the payload carried by an editor access token.
type AccessClaims struct {
	Login       string `json:"login"`
	AccessLevel int    `json:"lvl"`
	jwt.RegisteredClaims
}

// NewAccessToken issues a signed short-lived access token for the account.
func NewAccessToken(login string, accessLevel int, signingKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Login:       login,
		AccessLevel: accessLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "cultivator-content",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies the signature and expiry and returns the claims.
func ParseAccessToken(raw string, signingKey []byte) (AccessClaims, error) {
	var claims AccessClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AccessClaims{}, ErrTokenExpired
		}
		return AccessClaims{}, fmt.Errorf("parsing access token: %w", err)
	}
	return claims, nil
}
