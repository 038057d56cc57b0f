// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Predio Track API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health (unauthenticated):

	GET /health

Parcel state (requires X-Api-Key):

	GET  /predios             - List parcels, ?sections=a,b filter
	GET  /predios/{id}        - Parcel detail with history
	POST /predios/{id}/status - Record a status change

Sessions (requires X-Api-Key):

	POST /sessions - Record an actor login

Reporting (requires X-Api-Key):

	GET /stats/sections - Per-section status counts
	GET /changes        - Recent change history (?limit, capped at 500)
	GET /actors         - Actor directory (last seen, sections)

# Handler Initialization

The router creates handler instances with dependency injection:

	predioHandler := handlers.NewPredioHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)

All handlers receive the database connection and configuration, and every
API route is wrapped in logging plus the shared-secret check.
*/
package router
