// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/predio-track/auth"
	"github.com/danielhkuo/predio-track/cliparse"
	"github.com/danielhkuo/predio-track/handlers"
	"github.com/danielhkuo/predio-track/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	predioHandler := handlers.NewPredioHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)

	// Every API route carries the shared-secret check
	secured := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(auth.RequireKey(cfg.APIKey, h))
	}

	// Health check (unauthenticated)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Parcel state
	mux.HandleFunc("GET /predios", secured(predioHandler.List))
	mux.HandleFunc("GET /predios/{id}", secured(predioHandler.Get))
	mux.HandleFunc("POST /predios/{id}/status", secured(predioHandler.UpdateStatus))

	// Sessions
	mux.HandleFunc("POST /sessions", secured(sessionHandler.Login))

	// Reporting
	mux.HandleFunc("GET /stats/sections", secured(statsHandler.Summary))
	mux.HandleFunc("GET /changes", secured(statsHandler.History))
	mux.HandleFunc("GET /actors", secured(statsHandler.Actors))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("predio-track API v1"))
	})

	return mux
}
