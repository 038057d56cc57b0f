// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"net/http"

	"github.com/danielhkuo/predio-track/middleware"
)

var ErrInvalidAPIKey = errors.New("invalid api key")

// APIKeyHeader carries the shared secret on every request.
const APIKeyHeader = "X-Api-Key"

// ValidateKey checks the provided key against the configured secret using
// a constant-time compare.
func ValidateKey(provided, expected string) error {
	if !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidAPIKey
	}
	return nil
}

// RequireKey wraps a handler with the shared-secret check. Handlers behind
// it can assume every request they see is already authorized.
func RequireKey(key string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provided := r.Header.Get(APIKeyHeader)
		if provided == "" {
			middleware.ErrorResponse(w, http.StatusUnauthorized, APIKeyHeader+" header required")
			return
		}
		if err := ValidateKey(provided, key); err != nil {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
			return
		}
		next(w, r)
	}
}
