// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

// Package middleware provides the HTTP middleware chain for the heritage API
// server. This file covers authentication and role enforcement.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/prachasan/heritage-api/internal/platform/apperr"
	"github.com/prachasan/heritage-api/internal/platform/ctxutil"
	"github.com/prachasan/heritage-api/internal/platform/respond"
	"github.com/prachasan/heritage-api/internal/platform/sec"
)

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, the request proceeds as anonymous; the public browsing
//     surface requires no identity.
//  3. If present, verify the signature and issuer via [sec.TokenVerifier].
//  4. Consult the revocation denylist; a marker rejects the token.
//  5. Inject the [*sec.Principal] into the request context.
//
// The denylist lookup is advisory: if the lookup itself fails the request
// proceeds on signature validity alone, with a warning logged.
func Authenticate(verifier sec.TokenVerifier, denylist sec.Denylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			principal, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Revocation Check ───────────────────────────────────────────
			if denylist != nil {
				revoked, err := denylist.IsRevoked(request.Context(), principal.TokenID)
				if err != nil {
					ctxutil.GetLogger(request.Context()).WarnContext(request.Context(),
						"token_revocation_check_failed", slog.Any("error", err))
				} else if revoked {
					respond.Error(writer, request, apperr.Unauthorized("Token has been revoked"))
					return
				}
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose principal does not hold one of the
// allowed roles.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Anonymous requests
// receive 401; authenticated requests with an insufficient role receive 403.
func RequireRole(allowed ...sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := ctxutil.GetPrincipal(request.Context())
			if principal == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			for _, role := range allowed {
				if principal.Role == role {
					next.ServeHTTP(writer, request)
					return
				}
			}

			respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
		})
	}
}
