// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the shared-secret request check.

# API Key

Every request carries the shared secret in the X-Api-Key header. The check
uses a constant-time compare:

	err := auth.ValidateKey(provided, cfg.APIKey)

# Middleware

RequireKey wraps a handler so the core never sees unauthorized requests:

	mux.HandleFunc("GET /predios", auth.RequireKey(cfg.APIKey, handler))

Missing or mismatched keys get a 401 before any handler logic runs. There
is no identity behind the key - it is one secret shared by all dashboard
clients, not an access-control system.
*/
package auth
