// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package sec provides the security primitives for the heritage API.

It verifies RS256 JWTs issued by the foundation's external identity service
and models the authenticated principal that handlers receive through the
request context. This API never issues or refreshes tokens; it holds only
the public verification key.
*/
package sec

import (
	"context"
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated identity extracted from a verified token.
//
// It is injected into the request context by the Authenticate middleware and
// passed explicitly to any handler that needs it. No process-wide session
// state exists.
type Principal struct {
	// UserID is the subject's UUID at the identity service.
	UserID string
	// Username is the display name carried in the token.
	Username string
	// Role is the authority level used by RequireRole guards.
	Role Role
	// TokenID is the JWT "jti" claim, used for revocation lookups.
	TokenID string
}

// principalClaims is the JWT claim set expected from the identity service.
type principalClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier validates RS256 tokens against the identity service's public key.
type Verifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewVerifier loads a PEM-encoded RSA public key from disk and returns a
// ready-to-use [Verifier].
func NewVerifier(publicKeyPath, issuer string) (*Verifier, error) {
	pemBytes, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key: %w", err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &Verifier{publicKey: publicKey, issuer: issuer}, nil
}

// VerifyToken parses and validates a compact JWT string.
//
// # Validation
//
// The signing method must be RS256, the signature must match the configured
// public key, the issuer must match, and the token must be within its
// validity window. Any failure returns a non-nil error and a nil principal.
func (v *Verifier) VerifyToken(tokenString string) (*Principal, error) {
	claims := &principalClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	}, jwt.WithIssuer(v.issuer))
	if err != nil {
		return nil, fmt.Errorf("sec: token verification failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("sec: token is invalid")
	}

	return &Principal{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     Role(claims.Role),
		TokenID:  claims.ID,
	}, nil
}

// TokenVerifier is the interface the Authenticate middleware depends on.
//
// # Why an interface?
//
// It decouples the middleware from the concrete [Verifier], allowing mocks
// to be injected during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*Principal, error)
}

// Denylist reports whether a token was revoked before its natural expiry.
type Denylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
