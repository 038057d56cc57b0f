// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/predio-track/cliparse"
	"github.com/danielhkuo/predio-track/middleware"
	"github.com/danielhkuo/predio-track/models"
	"github.com/danielhkuo/predio-track/store"
)

type SessionHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *store.Sessions
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg, sessions: store.NewSessions(db)}
}

// Login handles POST /sessions
// Records who logged in and which sections they claimed. Not access
// control - the shared API key already admitted the request.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Actor == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "actor is required")
		return
	}

	sessionID, err := h.sessions.Record(r.Context(), req.Actor, req.Sections)
	if err != nil {
		slog.Error("failed to record session", "error", err, "actor", req.Actor)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record session")
		return
	}

	slog.Info("session recorded", "actor", req.Actor)

	middleware.JSONResponse(w, http.StatusCreated, models.LoginResponse{
		SessionID: sessionID,
		Actor:     req.Actor,
	})
}
