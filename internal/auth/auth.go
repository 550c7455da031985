// Package auth resolves bearer credentials to user identifiers. Credential
// issuance lives outside this system; the server only needs to verify a
// token and extract its subject. The JWT implementation below stands in for
// that external provider and is also used to mint tokens in tests and
// development tooling.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when the credential is past its "exp" claim.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidToken is returned for any other verification failure:
	// bad signature, wrong issuer, missing subject.
	ErrInvalidToken = errors.New("invalid token")
)

// Provider resolves a bearer credential to a user identifier.
type Provider interface {
	// Resolve verifies token and returns the user identifier it carries.
	// Returns ErrTokenExpired or ErrInvalidToken on failure.
	Resolve(ctx context.Context, token string) (string, error)
}

// JWTProvider verifies HMAC-SHA256 signed JWTs with an issuer check.
type JWTProvider struct {
	signKey []byte
	issuer  string
}

func NewJWTProvider(signKey, issuer string) *JWTProvider {
	return &JWTProvider{signKey: []byte(signKey), issuer: issuer}
}

// Resolve implements [Provider].
func (p *JWTProvider) Resolve(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.signKey, nil
	}, jwt.WithIssuer(p.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return subject, nil
}

// Issue mints a signed token for userID, valid for duration. Used by tests
// and development tooling; production credentials come from the external
// provider.
func (p *JWTProvider) Issue(userID string, duration time.Duration) (string, error) {
	if userID == "" || duration == 0 {
		return "", errors.New("invalid params for issuing token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    p.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.signKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}
