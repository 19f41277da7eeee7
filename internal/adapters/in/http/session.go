package http

import (
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer creates and verifies the signed tokens that carry a session,
// whether presented as a bearer header or a cookie.
// Tokens are HS256-signed JWTs whose subject is the user id; all further
// identity (role, citizen status) is resolved from the database on every
// request so that revoked memberships take effect immediately.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user.
func (t *TokenIssuer) Issue(userID kernel.UUID) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	})

	return token.SignedString(t.secret)
}

// Parse verifies a token and returns the user id it was issued for.
// Any verification failure, including expiry, is an authentication error.
func (t *TokenIssuer) Parse(tokenString string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.UUID{}, errs.NewAuthenticationErrorWithCause("invalid token", err)
	}
	if !token.Valid {
		return kernel.UUID{}, errs.NewAuthenticationError("invalid token")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewAuthenticationErrorWithCause("invalid token subject", err)
	}

	return userID, nil
}
